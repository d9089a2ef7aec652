package settingsfile

import (
	"regexp"

	"go.trai.ch/weave/internal/core/domain"
	"go.trai.ch/zerr"
)

var propertyRefRegex = regexp.MustCompile(`\$\{([a-zA-Z0-9._-]+)\}`)

// expandProperties replaces ${key} references in the string values of file with the
// project properties of the invocation.
func expandProperties(file *File, props map[string]string) error {
	fields := []*string{&file.RootProject}
	for i := range file.Include {
		fields = append(fields, &file.Include[i])
	}
	for i := range file.IncludeBuild {
		fields = append(fields, &file.IncludeBuild[i])
	}
	if cache := file.BuildCache; cache != nil {
		if cache.Local != nil {
			fields = append(fields, &cache.Local.Directory)
		}
		if cache.Remote != nil {
			fields = append(fields, &cache.Remote.URL)
		}
	}

	for _, field := range fields {
		expanded, err := expand(*field, props)
		if err != nil {
			return err
		}
		*field = expanded
	}
	return nil
}

func expand(s string, props map[string]string) (string, error) {
	var missing string
	out := propertyRefRegex.ReplaceAllStringFunc(s, func(ref string) string {
		key := propertyRefRegex.FindStringSubmatch(ref)[1]
		value, ok := props[key]
		if !ok {
			if missing == "" {
				missing = key
			}
			return ref
		}
		return value
	})
	if missing != "" {
		return "", zerr.With(domain.ErrUndefinedProjectProperty, "property", missing)
	}
	return out, nil
}
