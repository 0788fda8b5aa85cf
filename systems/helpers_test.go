package systems

import (
	"math/rand"
	"testing"

	"github.com/automoto/spacehog/assets"
	"github.com/automoto/spacehog/gamemath"
	"github.com/solarlune/resolv"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

const (
	testWidth  = 540.0
	testHeight = 960.0
)

type testEnv struct {
	w      donburi.World
	space  *resolv.Space
	lib    *assets.Library
	scaler *gamemath.Scaler
	rng    *rand.Rand
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	lib, err := assets.Load(assets.PlaceholderProvider{})
	require.NoError(t, err)
	return &testEnv{
		w:      donburi.NewWorld(),
		space:  resolv.NewSpace(int(testWidth), int(testHeight), 32, 32),
		lib:    lib,
		scaler: gamemath.NewScaler(testWidth, testHeight, 1080, 1920),
		rng:    rand.New(rand.NewSource(12345)),
	}
}
