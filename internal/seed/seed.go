// Package seed loads person records from YAML files.
//
// Each entry carries an optional id (zero lets the repository assign one),
// a first and last name, and a birth date in any format dateparse accepts.
package seed

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/lueurxax/greeter/internal/core/domain"
	coreerrors "github.com/lueurxax/greeter/internal/core/errors"
)

//go:embed people.yaml
var defaultSeed []byte

type document struct {
	People []entry `yaml:"people"`
}

type entry struct {
	ID    int    `yaml:"id" validate:"gte=0"`
	First string `yaml:"first" validate:"required,max=100"`
	Last  string `yaml:"last" validate:"required,max=100"`
	Born  string `yaml:"born" validate:"required"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	return v
}

// Default returns the embedded seed set.
func Default() ([]domain.Person, error) {
	return Load(bytes.NewReader(defaultSeed))
}

// LoadFile reads people from the YAML file at path.
func LoadFile(path string) ([]domain.Person, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Load reads people from YAML. Every entry is validated; the first invalid
// entry fails the whole load with errors.ErrInvalidSeedEntry.
func Load(r io.Reader) ([]domain.Person, error) {
	var doc document

	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return []domain.Person{}, nil
		}

		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	people := make([]domain.Person, 0, len(doc.People))

	for i, e := range doc.People {
		if err := validate.Struct(e); err != nil {
			return nil, fmt.Errorf("%w: entry %d: %s", coreerrors.ErrInvalidSeedEntry, i, describe(err))
		}

		born, err := dateparse.ParseIn(e.Born, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d: born %q: %w", coreerrors.ErrInvalidSeedEntry, i, e.Born, err)
		}

		people = append(people, domain.NewPerson(e.ID, e.First, e.Last, born.Year(), born.Month(), born.Day()))
	}

	return people, nil
}

func describe(err error) string {
	var valErrs validator.ValidationErrors
	if !errors.As(err, &valErrs) {
		return err.Error()
	}

	msgs := make([]string, 0, len(valErrs))
	for _, e := range valErrs {
		msgs = append(msgs, validationMessage(e))
	}

	return strings.Join(msgs, "; ")
}

func validationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Field())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", e.Field(), e.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", e.Field(), e.Param())
	default:
		return fmt.Sprintf("%s is invalid", e.Field())
	}
}
