package theme

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/palettekit/internal/palette"
)

func TestManagerUpdateIsOneBatch(t *testing.T) {
	p, n := newTestPalette(t)
	m := NewManager(p)

	err := m.Update(func(p *Palette) error {
		for _, state := range RibbonGroupCollapsedText.States {
			if _, err := p.SetValue(FeatureRibbonGroupCollapsedText, palette.KindTextColor, state, palette.RGB(255, 0, 0)); err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, n.calls)

	got, err := m.Resolve(FeatureRibbonGroupCollapsedText, palette.KindTextColor, palette.StateContextTracking)
	require.NoError(t, err)
	assert.Equal(t, palette.RGB(255, 0, 0), got)

	typed, err := ManagedResolve(m, FeatureRibbonGroupCollapsedText, palette.AttrTextColor, palette.StateTracking)
	require.NoError(t, err)
	assert.Equal(t, palette.RGB(255, 0, 0), typed)
}

func TestManagerConcurrentAccess(t *testing.T) {
	p, _ := newTestPalette(t)
	m := NewManager(p)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			_ = m.Update(func(p *Palette) error {
				_, err := p.SetValue(FeatureButtonStandalone, palette.KindPadding, palette.StateNormal, i)
				return err
			})
		}(i)
		go func() {
			defer wg.Done()
			_, err := ManagedResolve(m, FeatureButtonStandalone, palette.AttrPadding, palette.StateNormal)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	err := m.View(func(p *Palette) error {
		assert.False(t, p.IsDefault())
		return nil
	})
	require.NoError(t, err)
}
