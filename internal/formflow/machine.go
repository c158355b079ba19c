package formflow

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Devendra616/collectEmpData-sub000/internal/dto"
	"github.com/Devendra616/collectEmpData-sub000/internal/model"
	"github.com/Devendra616/collectEmpData-sub000/internal/validation"
)

// Step is one wizard position: a form section or the review screen.
type Step string

// StepReview is the terminal screen where final submission happens.
const StepReview Step = "review"

// Steps is the wizard order.
var Steps = []Step{
	Step(model.SectionPersonal),
	Step(model.SectionEducation),
	Step(model.SectionFamily),
	Step(model.SectionAddress),
	Step(model.SectionWork),
	StepReview,
}

// Machine errors.
var (
	ErrReadOnly     = errors.New("form submitted, sections are read-only")
	ErrNotAtReview  = errors.New("final submit is only available from the review step")
	ErrAtReview     = errors.New("review step takes no section payload")
	ErrWrongPayload = errors.New("payload type does not match the current section")
	ErrAtFirstStep  = errors.New("already at the first step")
)

// LocalValidationError is a client-side rejection: the payload never
// reached the network.
type LocalValidationError struct {
	Fields validation.FieldErrors
}

func (e *LocalValidationError) Error() string {
	return fmt.Sprintf("payload rejected locally on %d field(s)", len(e.Fields))
}

// Machine is the form state machine: a cursor over Steps, a per-section
// baseline for dirty detection, and the read-only latch set by final
// submission. Not safe for concurrent use; drive it from one goroutine.
type Machine struct {
	client  *Client
	session *Session

	cursor   int
	readOnly bool

	// baseline holds the normalized JSON of each section's last known
	// server state, in request shape. Advance compares against it to
	// skip the network when nothing changed.
	baseline map[Step][]byte
}

// NewMachine creates a Machine over an authenticated session.
// A session that already submitted starts read-only.
func NewMachine(client *Client, session *Session) *Machine {
	return &Machine{
		client:   client,
		session:  session,
		readOnly: session.IsSubmitted(),
		baseline: make(map[Step][]byte),
	}
}

// Current returns the step under the cursor.
func (m *Machine) Current() Step { return Steps[m.cursor] }

// ReadOnly reports whether edits are rejected.
func (m *Machine) ReadOnly() bool { return m.readOnly }

// LoadSection fetches the current step's section, serving from the
// session cache when already loaded. A section never saved on the server
// yields (nil, nil): an empty form.
func (m *Machine) LoadSection(ctx context.Context) (json.RawMessage, error) {
	step := m.Current()
	if step == StepReview {
		return nil, ErrAtReview
	}
	section := model.Section(step)

	if data, ok := m.session.Cached(section); ok {
		raw, _ := data.(json.RawMessage)
		return raw, nil
	}

	raw, err := m.client.Load(ctx, m.session, section)
	if err != nil {
		return nil, err
	}
	m.session.setCached(section, raw)
	m.baseline[step] = normalizeForStep(step, raw)
	return raw, nil
}

// Advance validates and saves the payload, then moves the cursor
// forward. When the payload structurally equals the baseline the save is
// skipped and only the cursor moves. From the last section the cursor
// lands on review.
func (m *Machine) Advance(ctx context.Context, payload interface{}) error {
	if err := m.save(ctx, payload); err != nil {
		return err
	}
	if m.cursor < len(Steps)-1 {
		m.cursor++
	}
	return nil
}

// SaveDraft validates and saves without moving the cursor.
func (m *Machine) SaveDraft(ctx context.Context, payload interface{}) error {
	return m.save(ctx, payload)
}

// Retreat moves the cursor back one step. It never saves; whatever was
// typed on the current screen stays local. Moving back is allowed even
// after submission.
func (m *Machine) Retreat() error {
	if m.cursor == 0 {
		return ErrAtFirstStep
	}
	m.cursor--
	return nil
}

// FinalSubmit submits the form. Only valid from the review step; on
// success the machine turns read-only. The cursor may still move so the
// submitted data stays browsable.
func (m *Machine) FinalSubmit(ctx context.Context) error {
	if m.Current() != StepReview {
		return ErrNotAtReview
	}
	if m.readOnly {
		return nil
	}
	if err := m.client.Submit(ctx, m.session); err != nil {
		return err
	}
	m.readOnly = true
	return nil
}

func (m *Machine) save(ctx context.Context, payload interface{}) error {
	if m.readOnly {
		return ErrReadOnly
	}
	step := m.Current()
	if step == StepReview {
		return ErrAtReview
	}
	section := model.Section(step)

	errs, ok := validatePayload(section, payload)
	if !ok {
		return ErrWrongPayload
	}
	if errs != nil {
		return &LocalValidationError{Fields: errs}
	}

	// clean payload: skip the network entirely
	norm := normalizePayload(step, payload)
	if base, ok := m.baseline[step]; ok && bytes.Equal(norm, base) {
		return nil
	}

	saved, err := m.client.Save(ctx, m.session, section, payload)
	if err != nil {
		return err
	}

	m.session.setCached(section, saved)
	m.baseline[step] = normalizeForStep(step, saved)
	return nil
}

// validatePayload runs the shared rules on a section payload. The rules
// are the same ones the server enforces, so a clean payload here is a
// clean payload there. ok=false means the payload type does not belong
// to the section.
func validatePayload(section model.Section, payload interface{}) (validation.FieldErrors, bool) {
	switch section {
	case model.SectionPersonal:
		req, ok := payload.(*dto.SavePersonalRequest)
		if !ok {
			return nil, false
		}
		return validation.ValidatePersonal(&req.PersonalDetail), true
	case model.SectionEducation:
		req, ok := payload.(*dto.SaveEducationRequest)
		if !ok {
			return nil, false
		}
		return validation.ValidateEducation(req.Entries), true
	case model.SectionFamily:
		req, ok := payload.(*dto.SaveFamilyRequest)
		if !ok {
			return nil, false
		}
		return validation.ValidateFamily(req.Members), true
	case model.SectionAddress:
		req, ok := payload.(*dto.SaveAddressRequest)
		if !ok {
			return nil, false
		}
		return validation.ValidateAddresses(req.Addresses), true
	case model.SectionWork:
		req, ok := payload.(*dto.SaveWorkRequest)
		if !ok {
			return nil, false
		}
		return validation.ValidateWork(req.IsWorking, req.Employers), true
	default:
		return nil, false
	}
}

// normalizePayload renders a payload as canonical JSON for structural
// comparison, in the section's request shape.
func normalizePayload(step Step, payload interface{}) []byte {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil
	}
	return normalizeForStep(step, raw)
}

// normalizeForStep projects data through the section's request shape, so
// baselines and payloads compare field-for-field despite the server
// record carrying extra columns (timestamps, owner ID). Server-derived
// fields the client never authors are zeroed: the employer duration is
// computed on save, so a fresh payload and the last echo would otherwise
// never compare equal.
func normalizeForStep(step Step, raw json.RawMessage) []byte {
	if raw == nil {
		return nil
	}

	var payload interface{}
	switch model.Section(step) {
	case model.SectionPersonal:
		payload = &dto.SavePersonalRequest{}
	case model.SectionEducation:
		payload = &dto.SaveEducationRequest{}
	case model.SectionFamily:
		payload = &dto.SaveFamilyRequest{}
	case model.SectionAddress:
		payload = &dto.SaveAddressRequest{}
	case model.SectionWork:
		payload = &dto.SaveWorkRequest{}
	default:
		return canonicalize(raw)
	}

	if err := json.Unmarshal(raw, payload); err != nil {
		return canonicalize(raw)
	}
	if work, ok := payload.(*dto.SaveWorkRequest); ok {
		for i := range work.Employers {
			work.Employers[i].Duration = model.Duration{}
		}
	}

	out, err := json.Marshal(payload)
	if err != nil {
		return canonicalize(raw)
	}
	return canonicalize(out)
}

// canonicalize round-trips JSON through interface{} for deterministic
// key order, dropping the server-owned audit fields that can never match
// a client payload.
func canonicalize(raw []byte) []byte {
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return raw
	}
	if m, ok := v.(map[string]interface{}); ok {
		delete(m, "created_at")
		delete(m, "updated_at")
		delete(m, "employee_id")
	}
	out, err := json.Marshal(v)
	if err != nil {
		return raw
	}
	return out
}
