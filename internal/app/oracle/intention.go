package oracle

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrMalformedIntention = errors.New("malformed intention")
	ErrOracleUnavailable  = errors.New("oracle unavailable")
)

// Intention is one student's proposal for the coming turn.
type Intention struct {
	StudentName string `json:"studentName"`
	Thought     string `json:"thought"`
	Action      string `json:"action"`
	TargetX     int    `json:"targetX"`
	TargetY     int    `json:"targetY"`
	NewMemory   string `json:"newMemory"`
}

// Rejection records an entry of the reply that was dropped.
type Rejection struct {
	Index int
	Err   error
}

type reply struct {
	Updates []json.RawMessage `json:"updates"`
}

// ParseReply decodes the oracle reply. A reply that cannot be read at all
// fails with ErrOracleUnavailable; individual bad entries are returned as
// rejections wrapping ErrMalformedIntention.
func ParseReply(raw []byte) ([]Intention, []Rejection, error) {
	body := stripFences(raw)
	if len(body) == 0 {
		return nil, nil, fmt.Errorf("%w: empty reply", ErrOracleUnavailable)
	}
	var r reply
	if err := json.Unmarshal(body, &r); err != nil {
		return nil, nil, fmt.Errorf("%w: decode reply: %v", ErrOracleUnavailable, err)
	}

	var (
		out      []Intention
		rejected []Rejection
	)
	for i, entry := range r.Updates {
		in, err := parseIntention(entry)
		if err != nil {
			rejected = append(rejected, Rejection{Index: i, Err: err})
			continue
		}
		out = append(out, in)
	}
	return out, rejected, nil
}

func parseIntention(entry json.RawMessage) (Intention, error) {
	dec := json.NewDecoder(bytes.NewReader(entry))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return Intention{}, fmt.Errorf("%w: %v", ErrMalformedIntention, err)
	}
	if err := intentionSchema.Validate(doc); err != nil {
		return Intention{}, fmt.Errorf("%w: %v", ErrMalformedIntention, err)
	}
	var in Intention
	if err := json.Unmarshal(entry, &in); err != nil {
		return Intention{}, fmt.Errorf("%w: %v", ErrMalformedIntention, err)
	}
	return in, nil
}

// stripFences removes a markdown code fence some models wrap JSON in.
func stripFences(raw []byte) []byte {
	body := bytes.TrimSpace(raw)
	if !bytes.HasPrefix(body, []byte("```")) {
		return body
	}
	body = bytes.TrimPrefix(body, []byte("```"))
	if nl := bytes.IndexByte(body, '\n'); nl >= 0 {
		body = body[nl+1:]
	} else {
		body = bytes.TrimPrefix(body, []byte("json"))
	}
	body = bytes.TrimSuffix(bytes.TrimSpace(body), []byte("```"))
	return bytes.TrimSpace(body)
}
