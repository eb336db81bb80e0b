package parser

import (
	"github.com/tidwall/gjson"
)

// requireField returns the value at key, failing when the key is absent.
// A key explicitly set to null is present and passes through; required
// fields are enforced on presence, not on value.
func requireField(obj gjson.Result, key string) (gjson.Result, error) {
	v := obj.Get(key)
	if !v.Exists() {
		return gjson.Result{}, &MissingFieldError{Field: key}
	}
	return v, nil
}

func requireString(obj gjson.Result, key string) (string, error) {
	v, err := requireField(obj, key)
	if err != nil {
		return "", err
	}
	return v.String(), nil
}

func requireInt(obj gjson.Result, key string) (int, error) {
	v, err := requireField(obj, key)
	if err != nil {
		return 0, err
	}
	return int(v.Int()), nil
}

func requireFloat(obj gjson.Result, key string) (float64, error) {
	v, err := requireField(obj, key)
	if err != nil {
		return 0, err
	}
	return v.Float(), nil
}

// requireStrings reads a required array of labels. Elements coerce through
// gjson string semantics and a null value yields an empty slice; the
// result is always non-nil so it serializes as [].
func requireStrings(obj gjson.Result, key string) ([]string, error) {
	v, err := requireField(obj, key)
	if err != nil {
		return nil, err
	}
	arr := v.Array()
	out := make([]string, 0, len(arr))
	for _, el := range arr {
		out = append(out, el.String())
	}
	return out, nil
}

// optionalObject returns the value at key when it is present and non-null.
func optionalObject(obj gjson.Result, key string) (gjson.Result, bool) {
	v := obj.Get(key)
	if !v.Exists() || v.Type == gjson.Null {
		return gjson.Result{}, false
	}
	return v, true
}

// datasetStories applies the required-collection rule shared by both
// generations: a dataset without a stories key is malformed, and the value
// must be an array.
func datasetStories(doc gjson.Result) ([]gjson.Result, error) {
	v, err := requireField(doc, "stories")
	if err != nil {
		return nil, err
	}
	if !v.IsArray() {
		return nil, &InvalidFieldError{Field: "stories", Want: "an array"}
	}
	return v.Array(), nil
}

// storyComments applies the optional-collection rule shared by both
// generations: an absent comments key means an empty list, anything else
// present must be an array.
func storyComments(story gjson.Result) ([]gjson.Result, error) {
	v := story.Get("comments")
	if !v.Exists() {
		return nil, nil
	}
	if !v.IsArray() {
		return nil, &InvalidFieldError{Field: "comments", Want: "an array"}
	}
	return v.Array(), nil
}
