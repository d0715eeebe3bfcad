package gravity

// Params defines the configurable constants of the gravity calculations
type Params struct {
	// PapazianConstant multiplies the gravity drop in the Papazian formula
	PapazianConstant float64

	// CorrectionConstant is the gravity change per 10°F from the reference
	CorrectionConstant float64
}

// ParamsConfig allows overriding the default parameters when creating a new Params instance
type ParamsConfig struct {
	PapazianConstant   float64
	CorrectionConstant float64
}

// NewDefaultParams creates a new Params instance with default values
func NewDefaultParams() *Params {
	return &Params{
		PapazianConstant:   DefaultPapazianConstant,
		CorrectionConstant: DefaultCorrectionConstant,
	}
}

// NewParams creates a new Params instance with custom configuration.
// Zero fields keep their defaults.
func NewParams(config ParamsConfig) *Params {
	params := NewDefaultParams()

	if config.PapazianConstant != 0 {
		params.PapazianConstant = config.PapazianConstant
	}
	if config.CorrectionConstant != 0 {
		params.CorrectionConstant = config.CorrectionConstant
	}

	return params
}
