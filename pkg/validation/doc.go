// Package validation evaluates user-entered text against an ordered set of
// rules bound to a single input field.
//
// A ValidationRule owns one ValidatableField, an optional Label used to
// display failures and the Rule values to check. Rules run in the order they
// were supplied and evaluation stops at the first rule that fails. The
// failure is returned as a *ValidationError binding the field, the label and
// the failing rule's message. A nil result means every rule passed.
//
// # Usage
//
//	vr, err := validation.New(usernameField, []validation.Rule{
//	    rules.Required(),
//	    rules.MinLength(3),
//	    rules.AlphaNumeric(),
//	}, usernameLabel)
//	if err != nil {
//	    return err
//	}
//
//	if verr := vr.ValidateField(); verr != nil {
//	    if l := verr.ErrorLabel(); l != nil {
//	        l.SetText(verr.Message())
//	    }
//	}
//
// # Live validation
//
// ValidateEdit checks the text the field would hold after replacing a range
// with new input, without touching the field. This is what an "as you type"
// handler calls before accepting a keystroke:
//
//	verr, err := vr.ValidateEdit(validation.Range{Start: 2, End: 2}, "c")
//
// Range indexes count Unicode code points by default. Use WithIndexUnit when
// the UI layer reports ranges in UTF-16 code units or bytes.
//
// # Error Handling
//
// A failed rule is an expected outcome and is returned as a value, never as
// an error. Misuse such as a nil field or a range outside the current text is
// reported through the sentinel errors ErrNilField, ErrNilRule and
// ErrInvalidRange.
//
// # Concurrency
//
// A ValidationRule performs no internal synchronisation. Evaluation never
// writes to the instance, but callers that mutate it with SetField or
// SetErrorLabel must serialise those calls with evaluation.
package validation
