package remote

// Document is an arbitrary JSON object returned by a third party whose schema isn't pinned down.
type Document map[string]interface{}

// FirstString checks keys in order and returns the first value which is a non-empty string,
// together with the key it was found under.
func (d Document) FirstString(keys ...string) (value, key string, ok bool) {
	for _, k := range keys {
		if s, isString := d[k].(string); isString && s != "" {
			return s, k, true
		}
	}
	return "", "", false
}
