package gaussjordan

import (
	"fmt"
	"math"
	"os"

	"github.com/BurntSushi/toml"
	logging "github.com/ipfs/go-log/v2"
)

// DefaultLogLevel keeps the engine silent unless asked otherwise.
const DefaultLogLevel = "error"

// Config is the file form of the engine settings.
//
//	[gaussjordan]
//	epsilon = 1e-10
//	snapshots = true
//	header = true
//	verifyTolerance = 1e-6
//	loglevel = "debug"
type Config struct {
	Epsilon         float64 `toml:"epsilon"`
	Snapshots       bool    `toml:"snapshots"`
	Header          bool    `toml:"header"`
	VerifyTolerance float64 `toml:"verifyTolerance"`
	LogLevel        string  `toml:"loglevel"`
}

// DefaultConfig mirrors the package defaults.
func DefaultConfig() Config {
	return Config{
		Epsilon:         DefaultEpsilon,
		Snapshots:       DefaultSnapshots,
		Header:          DefaultHeader,
		VerifyTolerance: DefaultVerifyTolerance,
		LogLevel:        DefaultLogLevel,
	}
}

// ParseConfig decodes the [gaussjordan] table of a TOML document. Keys that
// are absent keep their DefaultConfig values.
func ParseConfig(data string) (*Config, error) {
	var doc struct {
		GaussJordan Config `toml:"gaussjordan"`
	}
	doc.GaussJordan = DefaultConfig()
	if _, err := toml.Decode(data, &doc); err != nil {
		return nil, solverErrorf(opConfig, err)
	}
	if err := doc.GaussJordan.Validate(); err != nil {
		return nil, err
	}

	return &doc.GaussJordan, nil
}

// LoadConfig reads and parses a TOML file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, solverErrorf(opConfig, err)
	}

	return ParseConfig(string(data))
}

// Validate reports ErrInvalidConfig for values the engine cannot use.
func (c *Config) Validate() error {
	if math.IsNaN(c.Epsilon) || math.IsInf(c.Epsilon, 0) || c.Epsilon < 0 {
		return solverErrorf(opConfig, fmt.Errorf("%w: epsilon %g", ErrInvalidConfig, c.Epsilon))
	}
	if math.IsNaN(c.VerifyTolerance) || math.IsInf(c.VerifyTolerance, 0) || c.VerifyTolerance < 0 {
		return solverErrorf(opConfig, fmt.Errorf("%w: verifyTolerance %g", ErrInvalidConfig, c.VerifyTolerance))
	}
	if c.LogLevel != "" {
		if _, err := logging.LevelFromString(c.LogLevel); err != nil {
			return solverErrorf(opConfig, fmt.Errorf("%w: loglevel %q", ErrInvalidConfig, c.LogLevel))
		}
	}

	return nil
}

// Options validates c, applies its log level to the engine logger and
// returns the equivalent Option list.
func (c *Config) Options() ([]Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if c.LogLevel != "" {
		if err := logging.SetLogLevel(loggerName, c.LogLevel); err != nil {
			return nil, solverErrorf(opConfig, err)
		}
	}

	opts := []Option{WithEpsilon(c.Epsilon)}
	if c.Snapshots {
		opts = append(opts, WithSnapshots())
	} else {
		opts = append(opts, WithNoSnapshots())
	}
	if c.Header {
		opts = append(opts, WithHeader())
	} else {
		opts = append(opts, WithNoHeader())
	}

	return opts, nil
}

// Verify is the package-level Verify with tol taken from c.VerifyTolerance.
func (c *Config) Verify(coefficients [][]float64, constants, solution []float64) (float64, error) {
	return Verify(coefficients, constants, solution, c.VerifyTolerance)
}
