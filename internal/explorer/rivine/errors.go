package rivine

import "errors"

var (
	// ErrUnrecognizedCondition is returned for a condition tag outside the known set.
	ErrUnrecognizedCondition = errors.New("unrecognized condition type")
	// ErrUnrecognizedFulfillment is returned for a fulfillment tag outside the known set.
	ErrUnrecognizedFulfillment = errors.New("unrecognized fulfillment type")
	// ErrMissingField is returned when a required field is absent; the message names the field.
	ErrMissingField = errors.New("missing field")
	// ErrNoResult is returned when a hash response holds nothing decodable.
	ErrNoResult = errors.New("no decodable result")
	// ErrOutputNotFound is returned by point lookups that find no matching output.
	ErrOutputNotFound = errors.New("output not found")
)

// isUnrecognized reports whether err only drops the output or input being
// decoded instead of failing the response.
func isUnrecognized(err error) bool {
	return errors.Is(err, ErrUnrecognizedCondition) || errors.Is(err, ErrUnrecognizedFulfillment)
}

// mergeDrops concatenates lists of dropped elements, keeping one error per message.
func mergeDrops(lists ...[]error) []error {
	var merged []error
	seen := make(map[string]struct{})
	for _, list := range lists {
		for _, err := range list {
			msg := err.Error()
			if _, ok := seen[msg]; ok {
				continue
			}
			seen[msg] = struct{}{}
			merged = append(merged, err)
		}
	}
	return merged
}
