package script

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Garsondee/Weapon-Sense/internal/weapon"
)

func TestParse_OverlaysDefaults(t *testing.T) {
	p, err := Parse(`
		RocketLauncher_MaxSpeed = 4
		RailGun_DefaultRounds = 20
		Bot_ReactionTime = 0.5
		Bot_AimAccuracy = math.pi / 60
	`)
	require.NoError(t, err)

	def := Default()
	assert.Equal(t, 4.0, p.RocketLauncher.MaxSpeed)
	assert.Equal(t, def.RocketLauncher.FiringFreq, p.RocketLauncher.FiringFreq)
	assert.Equal(t, 20, p.RailGun.DefaultRounds)
	assert.Equal(t, 500*time.Millisecond, p.Bot.ReactionTime)
	assert.InDelta(t, 0.05235987755982988, p.Bot.AimAccuracy, 1e-12)
	assert.Equal(t, def.Bot.AimPersistence, p.Bot.AimPersistence)
}

func TestParse_RejectsNonNumbers(t *testing.T) {
	_, err := Parse(`Blaster_FiringFreq = "fast"`)
	assert.ErrorIs(t, err, ErrBadParam)
}

func TestParse_SyntaxError(t *testing.T) {
	_, err := Parse(`Blaster_FiringFreq = = 3`)
	assert.Error(t, err)
}

func TestParse_Sandboxed(t *testing.T) {
	_, err := Parse(`dofile("/etc/passwd")`)
	assert.Error(t, err)

	_, err = Parse(`os.exit(1)`)
	assert.Error(t, err)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params.lua")
	require.NoError(t, os.WriteFile(path, []byte("ShotGun_NumBallsInShell = 6\n"), 0o600))

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 6, p.Shotgun.NumBallsInShell)
	assert.Equal(t, 6, p.Weapon(weapon.TypeShotgun).NumBallsInShell)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.lua"))
	assert.Error(t, err)
}

func TestParams_WeaponUnknownType(t *testing.T) {
	assert.Equal(t, WeaponParams{}, Default().Weapon(weapon.Type(99)))
}
