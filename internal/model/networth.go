package model

import "encoding/json"

// AssetRecord is one document of a user's net-worth data (userId, balances,
// history...). Its shape belongs to the app that writes it; it is only read
// and forwarded to the model.
type AssetRecord map[string]any

// SummaryResult is the body returned by POST /networthResume.
type SummaryResult struct {
	Resume   string   `json:"resume"`
	IAStatus IAStatus `json:"ia_status"`

	Extra map[string]any `json:"-"`
}

// FallbackSummary returns the summary used on every non-success path.
func FallbackSummary(status IAStatus) SummaryResult {
	return SummaryResult{Resume: FallbackResume, IAStatus: status}
}

func (r SummaryResult) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(r.Extra)+2)
	for k, v := range r.Extra {
		out[k] = v
	}
	out["resume"] = r.Resume
	out["ia_status"] = r.IAStatus
	return json.Marshal(out)
}

func (r *SummaryResult) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*r = SummaryResult{
		Resume:   takeString(raw, "resume"),
		IAStatus: IAStatus(takeString(raw, "ia_status")),
	}
	if len(raw) > 0 {
		r.Extra = raw
	}
	return nil
}
