package styles

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	glinterrors "github.com/glintlabs/glint/pkg/errors"
)

// ThemeFile is the on-disk schema for a user-authored style. Settings carries
// the same key surface as programmatic construction, so a theme file can nest
// whole-layer blocks, per-state maps, or slot-order lists.
type ThemeFile struct {
	Name     string         `yaml:"name" validate:"required,style_name"`
	Parent   string         `yaml:"parent" validate:"omitempty,style_name"`
	Default  bool           `yaml:"default"`
	Settings map[string]any `yaml:"settings" validate:"required,min=1"`
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	styleNamePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9:_-]*$`)
	yamlLineRegex    = regexp.MustCompile(`line (\d+)`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		_ = v.RegisterValidation("style_name", func(fl validator.FieldLevel) bool {
			return styleNamePattern.MatchString(fl.Field().String())
		})
		validateInst = v
	})
	return validateInst
}

// LoadFile parses, validates, and registers one theme file. The returned
// style is registered under the file's declared name; a file marked default
// also becomes the registry default.
func (r *Registry) LoadFile(path string) (*Style, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, glinterrors.NewParseError(path, 0, err)
	}
	return r.loadTheme(path, data)
}

// LoadDir registers every .yaml/.yml theme file in dir, in name order so the
// result is deterministic when one file's parent names another. Missing dirs
// are not an error; a per-file failure aborts the load.
func (r *Registry) LoadDir(dir string) ([]*Style, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, glinterrors.NewParseError(dir, 0, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch filepath.Ext(entry.Name()) {
		case ".yaml", ".yml":
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(paths)

	styles := make([]*Style, 0, len(paths))
	for _, path := range paths {
		style, err := r.LoadFile(path)
		if err != nil {
			return nil, err
		}
		styles = append(styles, style)
	}
	return styles, nil
}

func (r *Registry) loadTheme(path string, data []byte) (*Style, error) {
	var tf ThemeFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, glinterrors.NewParseError(path, extractLine(err), err)
	}
	if err := validateThemeFile(&tf); err != nil {
		return nil, err
	}

	var parent any
	if tf.Parent != "" {
		parent = tf.Parent
	}
	style, err := r.New(tf.Name, parent, Settings(tf.Settings))
	if err != nil {
		return nil, err
	}
	if tf.Default {
		r.SetDefault(style)
	}
	return style, nil
}

func validateThemeFile(tf *ThemeFile) error {
	if tf == nil {
		return glinterrors.NewValidationError("theme", "theme file is nil", nil)
	}
	if err := validatorInstance().Struct(tf); err != nil {
		return convertValidationError(err)
	}
	return nil
}

func convertValidationError(err error) error {
	var verrs validator.ValidationErrors
	if ok := errors.As(err, &verrs); !ok || len(verrs) == 0 {
		return glinterrors.NewValidationError("theme", err.Error(), err)
	}

	fe := verrs[0]
	field := strings.ToLower(fe.Field())
	var message string
	switch fe.Tag() {
	case "required", "min":
		message = "is required"
	case "style_name":
		message = fmt.Sprintf("%q is not a valid style name", fe.Value())
	default:
		message = fmt.Sprintf("failed %q validation", fe.Tag())
	}
	return glinterrors.NewValidationError(field, message, err)
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}
	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}
