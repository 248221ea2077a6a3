package configurator

import (
	"github.com/rotisserie/eris"

	"github.com/nexlume/fibercat/internal/model"
)

// Wizard walks a build through Steps. It is not safe for concurrent use.
type Wizard struct {
	conf    *Configurator
	step    int
	profile model.Profile
	Config  model.CableConfiguration
}

// NewWizard starts a wizard on the first step with the default build.
func NewWizard(conf *Configurator) *Wizard {
	return &Wizard{conf: conf, Config: DefaultConfiguration()}
}

// Current returns the active step.
func (w *Wizard) Current() Step { return Steps[w.step] }

// Index returns the position of the active step.
func (w *Wizard) Index() int { return w.step }

// Profile returns the profile applied by the last application choice.
func (w *Wizard) Profile() model.Profile { return w.profile }

func (w *Wizard) IsFirst() bool { return w.step == 0 }

func (w *Wizard) IsLast() bool { return w.step == len(Steps)-1 }

// Next advances one step, stopping at the last.
func (w *Wizard) Next() {
	if !w.IsLast() {
		w.step++
	}
}

// Prev goes back one step, stopping at the first.
func (w *Wizard) Prev() {
	if !w.IsFirst() {
		w.step--
	}
}

// GoTo jumps to step i.
func (w *Wizard) GoTo(i int) error {
	if i < 0 || i >= len(Steps) {
		return eris.Errorf("configurator: step %d out of range", i)
	}
	w.step = i
	return nil
}

// Choose records value for the active step and advances. Steps without a
// single-value choice return an error.
func (w *Wizard) Choose(value string) error {
	switch w.Current().ID {
	case "application":
		cfg, profile, err := w.conf.SelectApplication(w.Config, model.Application(value))
		if err != nil {
			return err
		}
		w.Config, w.profile = cfg, profile
	case "fiber-type":
		if _, ok := LookupFiberType(value); !ok {
			return eris.Errorf("configurator: unknown fiber type %q", value)
		}
		w.Config.FiberType = value
	case "construction":
		if _, ok := LookupConstruction(value); !ok {
			return eris.Errorf("configurator: unknown construction %q", value)
		}
		w.Config.Construction = value
	case "connector-a", "connector-b":
		side := SideA
		if w.Current().ID == "connector-b" {
			side = SideB
		}
		cfg, err := SelectConnector(w.Config, side, value)
		if err != nil {
			return err
		}
		w.Config = cfg
	default:
		return eris.Errorf("configurator: step %q takes no single choice", w.Current().ID)
	}
	w.Next()
	return nil
}
