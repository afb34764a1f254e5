package viewport

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAspectStoreStartsUnknown(t *testing.T) {
	s := NewAspectStore(3)
	require.Equal(t, 3, s.PageCount())
	for _, m := range Modes {
		for _, a := range s.Aspects(m) {
			require.False(t, a.Known)
		}
	}
}

func TestAspectStoreSetIgnoresNoise(t *testing.T) {
	s := NewAspectStore(2)
	require.True(t, s.Set(ModeImage, 0, 1.25))
	v := s.Version()

	require.False(t, s.Set(ModeImage, 0, 1.25*(1+0.00005)))
	require.Equal(t, v, s.Version())
	got, ok := s.Aspect(ModeImage, 0)
	require.True(t, ok)
	require.Equal(t, 1.25, got)

	require.True(t, s.Set(ModeImage, 0, 1.3))
	require.Greater(t, s.Version(), v)
}

func TestAspectStoreRejectsInvalidUpdates(t *testing.T) {
	s := NewAspectStore(2)
	require.True(t, s.Set(ModeText, 1, 0.9))

	cases := []struct {
		name   string
		page   int
		aspect float64
	}{
		{"negative page", -1, 1},
		{"past end", 2, 1},
		{"zero", 1, 0},
		{"negative", 1, -1},
		{"nan", 1, math.NaN()},
		{"inf", 1, math.Inf(1)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.False(t, s.Set(ModeText, tc.page, tc.aspect))
		})
	}
	got, ok := s.Aspect(ModeText, 1)
	require.True(t, ok)
	require.Equal(t, 0.9, got)
}

func TestAspectStoreModesAreIndependent(t *testing.T) {
	s := NewAspectStore(1)
	s.Set(ModeImage, 0, 1.5)
	_, ok := s.Aspect(ModeText, 0)
	require.False(t, ok)
}

func TestAspectStoreNotesApplyToAllModes(t *testing.T) {
	s := NewAspectStore(2)
	note := &Note{ID: "n1", Title: "Intro"}
	s.SetNote(1, note)
	for _, m := range Modes {
		require.Same(t, note, s.Aspects(m)[1].Note)
	}
	s.SetNote(5, note) // ignored
}

func TestInvalidModePanics(t *testing.T) {
	s := NewAspectStore(1)
	require.Panics(t, func() { s.Aspects(Mode("pdf")) })
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode(" Text ")
	require.NoError(t, err)
	require.Equal(t, ModeText, m)

	_, err = ParseMode("pdf")
	require.ErrorIs(t, err, ErrInvalidMode)
	require.Equal(t, ModeText, ModeImage.Other())
}
