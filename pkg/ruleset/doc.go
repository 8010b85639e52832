// Package ruleset builds validation rules from declarative YAML documents.
//
// A document lists fields in order, each with its rules in evaluation order:
//
//	fields:
//	  - name: username
//	    rules:
//	      - rule: required
//	      - rule: min_length
//	        value: 3
//	        message: username is too short
//	      - rule: pattern
//	        pattern: "^[a-z0-9_]+$"
//	        description: lowercase letters, digits and underscores
//	  - name: email
//	    rules:
//	      - rule: required
//	      - rule: tag
//	        tag: email
//
// Rule names resolve through a Registry. DefaultRegistry knows every
// constructor from pkg/rules except confirmation, which needs a live field
// and is added in code. Register custom builders on a registry and pass it
// with WithRegistry.
//
// # Usage
//
//	rs, err := ruleset.Load(ctx, "rules/signup.yaml", ruleset.WithStrict(true))
//	if err != nil {
//	    return err
//	}
//	vr, err := rs.Bind("username", usernameField, usernameLabel)
//
// The file location can also come from the environment through Config and
// LoadFromConfig.
package ruleset
