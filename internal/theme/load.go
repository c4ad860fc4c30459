package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"swatch/internal/debug"
	appErrors "swatch/internal/errors"
	"swatch/internal/style"
)

// File is the on-disk form of a theme. Name defaults to the file's base name.
type File struct {
	Name              string `yaml:"name,omitempty"`
	style.ThemeDetail `yaml:",inline"`
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		_ = v.RegisterValidation("csscolor", func(fl validator.FieldLevel) bool {
			return style.ParseColor(fl.Field().String())
		})
		validateInst = v
	})
	return validateInst
}

// Validate checks that every required entry is present and colors parse.
func Validate(detail style.ThemeDetail) error {
	err := validatorInstance().Struct(detail)
	if err == nil {
		return nil
	}
	if ves, ok := err.(validator.ValidationErrors); ok {
		msgs := make([]string, 0, len(ves))
		for _, fe := range ves {
			msgs = append(msgs, fmt.Sprintf("%s failed '%s' (got %q)", yamlName(fe), fe.Tag(), fmt.Sprint(fe.Value())))
		}
		return appErrors.New(appErrors.CodeInvalidTheme, "invalid theme: "+strings.Join(msgs, "; "), err)
	}
	return appErrors.New(appErrors.CodeInvalidTheme, "invalid theme", err)
}

func yamlName(fe validator.FieldError) string {
	name := fe.Field()
	if name == "" {
		return name
	}
	return strings.ToLower(name[:1]) + name[1:]
}

// Parse decodes and validates a YAML theme document.
func Parse(data []byte) (File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, appErrors.New(appErrors.CodeInvalidTheme, "parse theme: "+err.Error(), err)
	}
	if err := Validate(f.ThemeDetail); err != nil {
		return File{}, err
	}
	return f, nil
}

// LoadFile reads one theme file.
func LoadFile(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, appErrors.New(appErrors.CodeNotFound, "read theme file: "+path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return File{}, fmt.Errorf("%s: %w", path, err)
	}
	if strings.TrimSpace(f.Name) == "" {
		f.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return f, nil
}

// LoadDir registers every *.yaml and *.yml theme in dir. A missing directory
// is not an error. Invalid files are skipped and reported together.
func (r *Registry) LoadDir(dir string) ([]string, error) {
	if dir == "" {
		return nil, nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, appErrors.New(appErrors.CodeConfigurationError, "read themes dir: "+dir, err)
	}

	var loaded []string
	var problems []string
	for _, e := range entries {
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if e.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		f, err := LoadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			debug.Logf("theme: skipping %s: %v", e.Name(), err)
			problems = append(problems, err.Error())
			continue
		}
		r.Register(f.Name, f.ThemeDetail)
		loaded = append(loaded, normalize(f.Name))
	}
	sort.Strings(loaded)

	if len(problems) > 0 {
		return loaded, appErrors.New(appErrors.CodeInvalidTheme, strings.Join(problems, "; "), nil)
	}
	return loaded, nil
}

// Marshal renders a theme as a YAML document LoadFile can read back.
func Marshal(name string, detail style.ThemeDetail) ([]byte, error) {
	return yaml.Marshal(File{Name: name, ThemeDetail: detail})
}
