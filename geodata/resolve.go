package geodata

import (
	stderrors "errors"

	"github.com/c360/geochart/errors"
	"github.com/c360/geochart/option"
)

// Resolve reconciles user-supplied region option fragments against the
// registered region set of mapName.
//
// For every region the registry knows, the result carries exactly one entry,
// in registry order. Registry names are first remapped through nameMap; a user
// fragment whose Name matches the post-remap name contributes its fields
// (cloned, so later option passes share nothing with this one). Registry
// regions the user never mentioned still get a bare entry so defaults apply
// uniformly. User fragments naming regions absent from the registry refer to
// nonexistent geometry and are dropped.
//
// Duplicate user fragment names resolve last-writer-wins. An unregistered
// mapName yields an empty list and no error; only registry source failures
// (a failing or malformed lazy provider) return an error, as a
// ResolutionError.
//
// Resolve is idempotent: identical inputs produce structurally identical
// output.
func Resolve(mapName string, userRegions []option.RegionOption, nameMap map[string]string) ([]option.RegionOption, error) {
	known, err := MapRegions(mapName)
	if err != nil {
		if stderrors.Is(err, errors.ErrMapNotRegistered) {
			// Not fatal: downstream rendering draws nothing and lookups
			// fall through to defaults.
			return []option.RegionOption{}, nil
		}
		return nil, err
	}

	byName := make(map[string]*option.RegionOption, len(userRegions))
	for i := range userRegions {
		if userRegions[i].Name == "" {
			continue
		}
		byName[userRegions[i].Name] = &userRegions[i]
	}

	filled := make([]option.RegionOption, 0, len(known))
	for _, region := range known {
		name := region.Name
		if mapped, ok := nameMap[name]; ok {
			name = mapped
		}

		if fragment, ok := byName[name]; ok {
			entry := fragment.Clone()
			entry.Name = name
			filled = append(filled, entry)
			continue
		}

		filled = append(filled, option.RegionOption{Name: name})
	}

	return filled, nil
}
