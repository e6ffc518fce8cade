package InputParameters

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/ghodss/yaml"
)

var ErrInvalidSetting = errors.New("invalid friction setting")

// FrictionParameters selects which momentum friction terms run and carries their coefficients.
// Keys match the option names used in model setup files
type FrictionParameters struct {
	Title string `json:"Title" toml:"Title"`
	// Term switches
	EnableImplicitVertFriction    bool `json:"enable_implicit_vert_friction" toml:"enable_implicit_vert_friction"`
	EnableExplicitVertFriction    bool `json:"enable_explicit_vert_friction" toml:"enable_explicit_vert_friction"`
	EnableHorFriction             bool `json:"enable_hor_friction" toml:"enable_hor_friction"`
	EnableBiharmonicFriction      bool `json:"enable_biharmonic_friction" toml:"enable_biharmonic_friction"`
	EnableRayFriction             bool `json:"enable_ray_friction" toml:"enable_ray_friction"`
	EnableBottomFriction          bool `json:"enable_bottom_friction" toml:"enable_bottom_friction"`
	EnableBottomFrictionVar       bool `json:"enable_bottom_friction_var" toml:"enable_bottom_friction_var"`
	EnableQuadraticBottomFriction bool `json:"enable_quadratic_bottom_friction" toml:"enable_quadratic_bottom_friction"`
	EnableMomentumSources         bool `json:"enable_momentum_sources" toml:"enable_momentum_sources"`
	EnableTEMFriction             bool `json:"enable_TEM_friction" toml:"enable_TEM_friction"`
	// Modifiers
	EnableConserveEnergy        bool `json:"enable_conserve_energy" toml:"enable_conserve_energy"`
	EnableHorFrictionCosScaling bool `json:"enable_hor_friction_cos_scaling" toml:"enable_hor_friction_cos_scaling"`
	EnableNoslipLateral         bool `json:"enable_noslip_lateral" toml:"enable_noslip_lateral"`
	EnableCyclicX               bool `json:"enable_cyclic_x" toml:"enable_cyclic_x"`
	// Coefficients
	DtMom               float64 `json:"dt_mom" toml:"dt_mom"`                               // s
	AH                  float64 `json:"A_h" toml:"A_h"`                                     // m^2/s
	AHbi                float64 `json:"A_hbi" toml:"A_hbi"`                                 // m^4/s
	KappaM0             float64 `json:"kappaM_0" toml:"kappaM_0"`                           // m^2/s
	RRay                float64 `json:"r_ray" toml:"r_ray"`                                 // 1/s
	RBot                float64 `json:"r_bot" toml:"r_bot"`                                 // 1/s
	RQuadBot            float64 `json:"r_quad_bot" toml:"r_quad_bot"`                       // dimensionless
	HorFrictionCosPower float64 `json:"hor_friction_cosPower" toml:"hor_friction_cosPower"` // exponent
}

// NewFrictionParameters returns settings with every term off, energy conservation on
// and the usual default coefficient magnitudes
func NewFrictionParameters() (fp *FrictionParameters) {
	fp = &FrictionParameters{
		EnableConserveEnergy: true,
		KappaM0:              1.e-4,
		HorFrictionCosPower:  3,
	}
	return
}

// Parse reads settings from data in the named format, "yaml" (also "yml") or "toml".
// Keys absent from data keep their current values
func (fp *FrictionParameters) Parse(data []byte, format string) (err error) {
	switch strings.ToLower(format) {
	case "yaml", "yml":
		err = yaml.Unmarshal(data, fp)
	case "toml":
		err = toml.Unmarshal(data, fp)
	default:
		err = fmt.Errorf("%w: unknown settings format %q", ErrInvalidSetting, format)
	}
	return
}

// LoadFile reads a settings file over the defaults, choosing the format from the file extension
func LoadFile(fileName string) (fp *FrictionParameters, err error) {
	var (
		data []byte
	)
	if data, err = os.ReadFile(fileName); err != nil {
		return
	}
	fp = NewFrictionParameters()
	if err = fp.Parse(data, strings.TrimPrefix(filepath.Ext(fileName), ".")); err != nil {
		return nil, fmt.Errorf("reading %s: %w", fileName, err)
	}
	return
}

// Validate checks coefficients against the switches that use them
func (fp *FrictionParameters) Validate() (err error) {
	for _, chk := range []struct {
		name string
		val  float64
	}{
		{"dt_mom", fp.DtMom}, {"A_h", fp.AH}, {"A_hbi", fp.AHbi}, {"kappaM_0", fp.KappaM0},
		{"r_ray", fp.RRay}, {"r_bot", fp.RBot}, {"r_quad_bot", fp.RQuadBot},
		{"hor_friction_cosPower", fp.HorFrictionCosPower},
	} {
		if math.IsNaN(chk.val) || math.IsInf(chk.val, 0) {
			return fmt.Errorf("%w: %s = %g is not finite", ErrInvalidSetting, chk.name, chk.val)
		}
	}
	switch {
	case fp.EnableImplicitVertFriction && !(fp.DtMom > 0):
		err = fmt.Errorf("%w: implicit vertical friction needs dt_mom > 0, have %g", ErrInvalidSetting, fp.DtMom)
	case fp.AH < 0:
		err = fmt.Errorf("%w: A_h = %g is negative", ErrInvalidSetting, fp.AH)
	case fp.KappaM0 < 0:
		err = fmt.Errorf("%w: kappaM_0 = %g is negative", ErrInvalidSetting, fp.KappaM0)
	case fp.RRay < 0, fp.RBot < 0, fp.RQuadBot < 0:
		err = fmt.Errorf("%w: drag coefficients r_ray, r_bot, r_quad_bot = %g, %g, %g must be non-negative",
			ErrInvalidSetting, fp.RRay, fp.RBot, fp.RQuadBot)
	case fp.EnableBottomFrictionVar && !fp.EnableBottomFriction:
		err = fmt.Errorf("%w: enable_bottom_friction_var requires enable_bottom_friction", ErrInvalidSetting)
	}
	return
}

// AnyEnabled reports whether at least one friction term is switched on
func (fp *FrictionParameters) AnyEnabled() bool {
	return fp.EnableImplicitVertFriction || fp.EnableExplicitVertFriction || fp.EnableTEMFriction ||
		fp.EnableHorFriction || fp.EnableBiharmonicFriction || fp.EnableRayFriction ||
		fp.EnableBottomFriction || fp.EnableQuadraticBottomFriction || fp.EnableMomentumSources
}

func (fp *FrictionParameters) Print() {
	onOff := func(b bool) string {
		if b {
			return "on"
		}
		return "off"
	}
	fmt.Printf("\"%s\"\t\t= Title\n", fp.Title)
	fmt.Printf("[%s]\t\t\t= Implicit Vertical Friction\n", onOff(fp.EnableImplicitVertFriction))
	fmt.Printf("[%s]\t\t\t= Explicit Vertical Friction\n", onOff(fp.EnableExplicitVertFriction))
	fmt.Printf("[%s]\t\t\t= TEM Friction\n", onOff(fp.EnableTEMFriction))
	fmt.Printf("[%s]\t\t\t= Harmonic Friction, cos scaling [%s], no-slip [%s]\n", onOff(fp.EnableHorFriction),
		onOff(fp.EnableHorFrictionCosScaling), onOff(fp.EnableNoslipLateral))
	fmt.Printf("[%s]\t\t\t= Biharmonic Friction\n", onOff(fp.EnableBiharmonicFriction))
	fmt.Printf("[%s]\t\t\t= Rayleigh Friction\n", onOff(fp.EnableRayFriction))
	fmt.Printf("[%s]\t\t\t= Linear Bottom Friction, variable [%s]\n", onOff(fp.EnableBottomFriction),
		onOff(fp.EnableBottomFrictionVar))
	fmt.Printf("[%s]\t\t\t= Quadratic Bottom Friction\n", onOff(fp.EnableQuadraticBottomFriction))
	fmt.Printf("[%s]\t\t\t= Momentum Sources\n", onOff(fp.EnableMomentumSources))
	fmt.Printf("[%s]\t\t\t= Conserve Energy\n", onOff(fp.EnableConserveEnergy))
	fmt.Printf("[%s]\t\t\t= Cyclic X\n", onOff(fp.EnableCyclicX))
	fmt.Printf("%8.5g\t\t= dt_mom\n", fp.DtMom)
	fmt.Printf("%8.5g\t\t= A_h\n", fp.AH)
	fmt.Printf("%8.5g\t\t= A_hbi\n", fp.AHbi)
	fmt.Printf("%8.5g\t\t= kappaM_0\n", fp.KappaM0)
	fmt.Printf("%8.5g\t\t= r_ray\n", fp.RRay)
	fmt.Printf("%8.5g\t\t= r_bot\n", fp.RBot)
	fmt.Printf("%8.5g\t\t= r_quad_bot\n", fp.RQuadBot)
	fmt.Printf("%8.5g\t\t= hor_friction_cosPower\n", fp.HorFrictionCosPower)
}
