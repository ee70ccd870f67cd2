package cli

import "github.com/geoncore/geoncore/pkg/geonerrors"

var errNonPositiveTolerance = geonerrors.New(geonerrors.ErrCodeInvalidGeometry, "snap requires --tolerance > 0")
