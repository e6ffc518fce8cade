package InputParameters

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var yamlSettings = `
Title: "Closed basin"
enable_implicit_vert_friction: true
enable_hor_friction: true
enable_hor_friction_cos_scaling: true
enable_bottom_friction: true
dt_mom: 3600
A_h: 2.5e+4
r_bot: 1.e-5
hor_friction_cosPower: 1
`

var tomlSettings = `
Title = "Closed basin"
enable_implicit_vert_friction = true
enable_hor_friction = true
enable_hor_friction_cos_scaling = true
enable_bottom_friction = true
dt_mom = 3600.0
A_h = 2.5e4
r_bot = 1.0e-5
hor_friction_cosPower = 1.0
`

func TestParse(t *testing.T) {
	for _, tc := range []struct {
		format, data string
	}{
		{"yaml", yamlSettings},
		{"toml", tomlSettings},
	} {
		t.Run(tc.format, func(t *testing.T) {
			fp := NewFrictionParameters()
			require.NoError(t, fp.Parse([]byte(tc.data), tc.format))
			assert.Equal(t, "Closed basin", fp.Title)
			assert.True(t, fp.EnableImplicitVertFriction)
			assert.True(t, fp.EnableHorFriction)
			assert.True(t, fp.EnableHorFrictionCosScaling)
			assert.True(t, fp.EnableBottomFriction)
			assert.False(t, fp.EnableBiharmonicFriction)
			assert.Equal(t, 3600., fp.DtMom)
			assert.Equal(t, 2.5e4, fp.AH)
			assert.Equal(t, 1.e-5, fp.RBot)
			assert.Equal(t, 1., fp.HorFrictionCosPower)
			// Defaults survive when the key is absent
			assert.True(t, fp.EnableConserveEnergy)
			assert.Equal(t, 1.e-4, fp.KappaM0)
			assert.NoError(t, fp.Validate())
			assert.True(t, fp.AnyEnabled())
		})
	}
	fp := NewFrictionParameters()
	assert.True(t, errors.Is(fp.Parse([]byte(yamlSettings), "ini"), ErrInvalidSetting))
	assert.False(t, fp.AnyEnabled())
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	{
		fileName := filepath.Join(dir, "basin.toml")
		require.NoError(t, os.WriteFile(fileName, []byte(tomlSettings), 0644))
		fp, err := LoadFile(fileName)
		require.NoError(t, err)
		assert.Equal(t, 3600., fp.DtMom)
	}
	{
		fileName := filepath.Join(dir, "basin.yml")
		require.NoError(t, os.WriteFile(fileName, []byte(yamlSettings), 0644))
		fp, err := LoadFile(fileName)
		require.NoError(t, err)
		assert.Equal(t, 2.5e4, fp.AH)
	}
	{
		fileName := filepath.Join(dir, "basin.cfg")
		require.NoError(t, os.WriteFile(fileName, []byte(yamlSettings), 0644))
		_, err := LoadFile(fileName)
		assert.True(t, errors.Is(err, ErrInvalidSetting))
	}
	_, err := LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestValidate(t *testing.T) {
	for _, tc := range []struct {
		name  string
		setup func(fp *FrictionParameters)
	}{
		{"implicit without timestep", func(fp *FrictionParameters) { fp.EnableImplicitVertFriction = true }},
		{"negative harmonic viscosity", func(fp *FrictionParameters) { fp.AH = -1 }},
		{"negative vertical viscosity", func(fp *FrictionParameters) { fp.KappaM0 = -1 }},
		{"negative drag", func(fp *FrictionParameters) { fp.RQuadBot = -1.e-3 }},
		{"variable drag without bottom friction", func(fp *FrictionParameters) { fp.EnableBottomFrictionVar = true }},
		{"not finite", func(fp *FrictionParameters) { fp.RRay = math.NaN() }},
	} {
		t.Run(tc.name, func(t *testing.T) {
			fp := NewFrictionParameters()
			tc.setup(fp)
			assert.True(t, errors.Is(fp.Validate(), ErrInvalidSetting))
		})
	}
	// Biharmonic coefficients are used through their magnitude, either sign is accepted
	fp := NewFrictionParameters()
	fp.AHbi = -1.e11
	assert.NoError(t, fp.Validate())
}
