package mapfmt

import "errors"

// ErrUnsupportedTextureForLegacyMap is returned by Write when a face's
// texture projection cannot be represented in the legacy "100" form: that
// form only supports axis-aligned projections, not arbitrary u/v axes
// (spec §7).
var ErrUnsupportedTextureForLegacyMap = errors.New("mapfmt: texture projection is not axis-aligned; cannot write in legacy 100 form")
