package value

import (
	"encoding/json"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/tonylang/confval/errs"
)

// ApplyJSONPatch applies an RFC 6902 JSON Patch document to a
// dictionary Value and returns the patched result. This supplements
// spec.md's core (which has no notion of layering configuration
// documents) with a realistic config-management operation: overlaying
// an override document onto a base one. base must hold the dictionary
// variant; patchDoc is the JSON text of a JSON Patch document, which
// is decoded with github.com/evanphx/json-patch's DecodePatch.
func ApplyJSONPatch(base Value, patchDoc []byte) (Value, error) {
	if base.Kind() != DictionaryKind {
		return Value{}, errs.New(errs.ConversionFailed, "json patch target must be a dictionary, got %s", base.TypeName())
	}
	baseJSON, err := json.Marshal(ToAny(base))
	if err != nil {
		return Value{}, errs.Wrap(errs.ConversionFailed, err, "marshal base value")
	}
	patch, err := jsonpatch.DecodePatch(patchDoc)
	if err != nil {
		return Value{}, errs.Wrap(errs.ConversionFailed, err, "decode json patch")
	}
	patched, err := patch.Apply(baseJSON)
	if err != nil {
		return Value{}, errs.Wrap(errs.ConversionFailed, err, "apply json patch")
	}
	var decoded any
	if err := json.Unmarshal(patched, &decoded); err != nil {
		return Value{}, errs.Wrap(errs.ConversionFailed, err, "unmarshal patched value")
	}
	return FromAny(decoded), nil
}

// MergeJSON overlays a second JSON document onto a base dictionary
// Value using RFC 7396 JSON Merge Patch semantics, the simpler
// sibling of ApplyJSONPatch for the common "override file layered on
// top of a base file" case.
func MergeJSON(base Value, overlay []byte) (Value, error) {
	if base.Kind() != DictionaryKind {
		return Value{}, errs.New(errs.ConversionFailed, "json merge target must be a dictionary, got %s", base.TypeName())
	}
	baseJSON, err := json.Marshal(ToAny(base))
	if err != nil {
		return Value{}, errs.Wrap(errs.ConversionFailed, err, "marshal base value")
	}
	merged, err := jsonpatch.MergePatch(baseJSON, overlay)
	if err != nil {
		return Value{}, errs.Wrap(errs.ConversionFailed, err, "apply json merge patch")
	}
	var decoded any
	if err := json.Unmarshal(merged, &decoded); err != nil {
		return Value{}, errs.Wrap(errs.ConversionFailed, err, "unmarshal merged value")
	}
	return FromAny(decoded), nil
}
