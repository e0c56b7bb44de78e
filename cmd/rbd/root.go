package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app carries the state shared by the sub-commands of one invocation.
type app struct {
	v   *viper.Viper
	log *logrus.Logger
	cfg config
}

func newRootCommand() *cobra.Command {
	a := &app{
		v:   viper.New(),
		log: logrus.New(),
	}

	cmd := &cobra.Command{
		Use:   "rbd",
		Short: "Rigid body dynamics workbench: rotations, principal axes and inertia",
		Long: `rbd evaluates the building blocks of rigid-body kinematics in 3-D:
direction cosine matrices, principal rotation axes, inertia matrices and
their principal axes.

Settings come from flags, RBD_* environment variables (RBD_EPSILON,
RBD_EIGEN_METHOD, ...) and an optional --config file, in that order.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(a.v, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.log.SetOutput(cmd.ErrOrStderr())
			a.log.SetLevel(cfg.LogLevel)
			a.log.WithFields(logrus.Fields{
				"epsilon":     cfg.Epsilon,
				"eigenMethod": cfg.EigenMethod,
				"config":      a.v.ConfigFileUsed(),
			}).Debug("configuration resolved")

			return nil
		},
	}
	addConfigFlags(cmd.PersistentFlags())

	cmd.AddCommand(
		newDemoCommand(a),
		newAxisCommand(a),
		newPrincipalCommand(a),
		newSweepCommand(a),
	)
	return cmd
}
