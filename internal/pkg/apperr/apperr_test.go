package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorIs_KindSentinelMatchesConcreteError(t *testing.T) {
	errBookingNotFound := New(KindNotFound, "booking not found")
	wrapped := fmt.Errorf("load booking 7: %w", errBookingNotFound)

	assert.ErrorIs(t, wrapped, ErrNotFound)
	assert.ErrorIs(t, wrapped, errBookingNotFound)
	assert.NotErrorIs(t, wrapped, ErrForbidden)
}

func TestErrorIs_ConcreteSentinelsDoNotMatchEachOther(t *testing.T) {
	a := New(KindNotFound, "booking not found")
	b := New(KindNotFound, "service not found")

	assert.False(t, errors.Is(a, b))
	assert.True(t, errors.Is(a, ErrNotFound))
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindAlreadyPaid, KindOf(fmt.Errorf("x: %w", New(KindAlreadyPaid, "booking already paid"))))
	assert.Equal(t, Kind(""), KindOf(errors.New("boom")))
	assert.Equal(t, "not_found", ErrNotFound.Error())
}
