package shift

import (
	"errors"
	"sort"
	"strings"
)

// RegistrationFee is the one-time fee added to every admission on
// top of the shift combination fee.
const RegistrationFee uint32 = 50

// ErrUnpricedCombination is returned when a shift set has no entry
// in the combination price table.  The table deliberately covers
// only the combinations the library sells; anything else must be
// rejected at validation time rather than priced at zero.
var ErrUnpricedCombination = errors.New("shift combination has no price")

// combinationFees maps a canonical shift-set key (the sorted shift
// ids joined by commas) to its monthly price.  Single shifts plus
// four multi-shift packages are sold; note that keys are sorted
// alphabetically, so the noon+evening package appears under
// "evening,noon".
var combinationFees = map[string]uint32{
	Morning:                    299,
	Noon:                       349,
	Evening:                    299,
	Night:                      299,
	"morning,noon":             549,
	"evening,noon":             549,
	"evening,morning,noon":     749,
	"evening,morning,night,noon": 999,
}

// CombinationKey canonicalizes a shift set by sorting the ids and
// joining them with commas.  Duplicate ids collapse into one.
func CombinationKey(ids []string) string {
	seen := make(map[string]struct{}, len(ids))
	uniq := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(strings.ToLower(id))
		if id == "" {
			continue
		}
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			uniq = append(uniq, id)
		}
	}
	sort.Strings(uniq)
	return strings.Join(uniq, ",")
}

// Fee returns the monthly price for the given shift set.  The lookup
// is order-independent.  Unknown or unpriced combinations return
// ErrUnpricedCombination.
func Fee(ids []string) (uint32, error) {
	key := CombinationKey(ids)
	if key == "" {
		return 0, ErrUnpricedCombination
	}
	fee, ok := combinationFees[key]
	if !ok {
		return 0, ErrUnpricedCombination
	}
	return fee, nil
}

// TotalAmount returns RegistrationFee plus the combination fee for
// the given shift set.
func TotalAmount(ids []string) (uint32, error) {
	fee, err := Fee(ids)
	if err != nil {
		return 0, err
	}
	return RegistrationFee + fee, nil
}
