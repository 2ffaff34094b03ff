// Package locale stores the per-language message templates used by the
// validate package. Templates are keyed by error code (e.g.
// "validation.equal") and grouped by language; lookup walks from the exact
// language tag to its base language to the catalog's fallback language, so
// "es-MX" resolves through "es" before falling back to English.
//
// The built-in catalog ships English, Spanish, German and French templates.
// Custom catalogs can be assembled with Register or loaded from YAML or JSON
// documents mapping language codes to code/template pairs:
//
//	es:
//	  validation.equal: "'{PropertyName}' debe ser igual a '{ComparisonValue}'."
//
// Catalogs are safe for concurrent use; Register and the loaders may be
// called at any time.
package locale
