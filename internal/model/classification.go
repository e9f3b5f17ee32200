package model

import "encoding/json"

// ClassificationResult is the body returned by POST /classify.
//
// On success the provider's fields are passed through verbatim: anything the
// model returned outside the three category fields lives in Extra and is
// emitted alongside them.
type ClassificationResult struct {
	IDCategoria  string   `json:"idcategoria"`
	Categoria    string   `json:"categoria"`
	Subcategoria string   `json:"subcategoria"`
	IAStatus     IAStatus `json:"ia_status"`

	Extra map[string]any `json:"-"`
}

// FallbackClassification returns the fixed category used on every non-success path.
func FallbackClassification(status IAStatus) ClassificationResult {
	return ClassificationResult{
		IDCategoria:  FallbackCategoryID,
		Categoria:    FallbackCategory,
		Subcategoria: FallbackSubcategory,
		IAStatus:     status,
	}
}

func (r ClassificationResult) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(r.Extra)+4)
	for k, v := range r.Extra {
		out[k] = v
	}
	out["idcategoria"] = r.IDCategoria
	out["categoria"] = r.Categoria
	out["subcategoria"] = r.Subcategoria
	out["ia_status"] = r.IAStatus
	return json.Marshal(out)
}

func (r *ClassificationResult) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*r = ClassificationResult{
		IDCategoria:  takeString(raw, "idcategoria"),
		Categoria:    takeString(raw, "categoria"),
		Subcategoria: takeString(raw, "subcategoria"),
		IAStatus:     IAStatus(takeString(raw, "ia_status")),
	}
	if len(raw) > 0 {
		r.Extra = raw
	}
	return nil
}

// takeString removes key from m and returns it when it holds a string.
// Non-string values stay in m.
func takeString(m map[string]any, key string) string {
	s, ok := m[key].(string)
	if ok {
		delete(m, key)
	}
	return s
}
