/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"

	"github.com/notargets/goocean/InputParameters"
	"github.com/notargets/goocean/friction"
	"github.com/notargets/goocean/model_problems/Basin"
	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type ModelBasin struct {
	SettingsFile   string
	Problem        string
	Nx, Ny, Nz     int // Columns and levels, halo included in Nx and Ny
	Steps          int
	ParallelDegree int
	DtMom          float64 // Overrides the settings file when positive
	Profile        string
}

// BasinCmd represents the basin command
var BasinCmd = &cobra.Command{
	Use:   "basin",
	Short: "Idealized spin-down of a closed basin or a periodic channel under friction",
	Long: `
Sets up a decaying circulation in a closed basin or a zonally periodic channel and steps it
forward under the friction terms enabled in the settings file, logging the energy budget of each step.

Example settings file (YAML or TOML, chosen by extension):
########################################
Title: "Spin down"
dt_mom: 3600
enable_implicit_vert_friction: true
kappaM_0: 1.e-2
enable_hor_friction: true
A_h: 1.e3
enable_quadratic_bottom_friction: true
r_quad_bot: 1.e-3
########################################
`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		mb := &ModelBasin{
			SettingsFile:   viper.GetString("basin.settings"),
			Problem:        viper.GetString("basin.problem"),
			Nx:             viper.GetInt("basin.nx"),
			Ny:             viper.GetInt("basin.ny"),
			Nz:             viper.GetInt("basin.nz"),
			Steps:          viper.GetInt("basin.steps"),
			ParallelDegree: viper.GetInt("basin.parallel"),
			DtMom:          viper.GetFloat64("basin.dt"),
			Profile:        viper.GetString("basin.profile"),
		}
		switch mb.Profile {
		case "":
		case "cpu":
			defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
		case "mem":
			defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
		default:
			return fmt.Errorf("unknown profile type %q, use cpu or mem", mb.Profile)
		}
		_, err = RunBasin(mb, log)
		return
	},
}

func init() {
	rootCmd.AddCommand(BasinCmd)
	fl := BasinCmd.Flags()
	fl.StringP("settings", "I", "", "friction settings file, .yaml, .yml or .toml")
	fl.StringP("problem", "p", "basin", "problem to run: basin or channel")
	fl.Int("nx", 24, "number of zonal columns, halo included")
	fl.Int("ny", 20, "number of meridional columns, halo included")
	fl.Int("nz", 8, "number of vertical levels")
	fl.IntP("steps", "s", 10, "number of time steps")
	fl.IntP("parallel", "n", 0, "number of concurrent column solvers, 0 uses all CPUs")
	fl.Float64("dt", 0, "time step in seconds, overrides dt_mom from the settings file")
	fl.String("profile", "", "write a cpu or mem profile")
	for _, name := range []string{"settings", "problem", "nx", "ny", "nz", "steps", "parallel", "dt", "profile"} {
		_ = viper.BindPFlag("basin."+name, fl.Lookup(name))
	}
}

// RunBasin loads the friction settings, builds the problem and runs it for the requested steps
func RunBasin(mb *ModelBasin, log logrus.FieldLogger) (budgets []friction.Budget, err error) {
	var (
		fp *InputParameters.FrictionParameters
		pt Basin.ProblemType
		b  *Basin.Basin
	)
	if pt, err = Basin.NewProblemType(mb.Problem); err != nil {
		return
	}
	if len(mb.SettingsFile) == 0 {
		log.Warn("no settings file (-I, --settings) given, every friction term is off")
		fp = InputParameters.NewFrictionParameters()
	} else if fp, err = InputParameters.LoadFile(mb.SettingsFile); err != nil {
		return
	}
	if mb.DtMom > 0 {
		fp.DtMom = mb.DtMom
	}
	if b, err = Basin.NewBasin(pt, mb.Nx, mb.Ny, mb.Nz, fp, log,
		friction.WithParallelDegree(mb.ParallelDegree)); err != nil {
		return
	}
	b.Params.Print()
	return b.Run(mb.Steps)
}
