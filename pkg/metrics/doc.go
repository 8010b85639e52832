// Package metrics exports field validation outcomes as Prometheus metrics.
//
// Collector implements validation.Observer. Register it on a registry and
// pass it to every ValidationRule that should be measured:
//
//	reg := prometheus.NewRegistry()
//	collector, err := metrics.NewCollector(metrics.Config{Namespace: "signup"}, reg)
//	if err != nil {
//	    return err
//	}
//	vr, _ := validation.New(field, rules, label,
//	    validation.WithName("email"),
//	    validation.WithObserver(collector),
//	)
//
// Exported series:
//
//	<ns>_field_validations_total{field,result}     counter, result is "passed" or "failed"
//	<ns>_field_validation_failures_total{field,rule_index}
//	<ns>_field_validation_rules_evaluated{field}   histogram of rules run per evaluation
//	<ns>_field_validation_duration_seconds{field}  histogram
//
// Field names become label values, so only name fields with a bounded set
// of names.
package metrics
