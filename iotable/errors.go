package iotable

import "errors"

var (
	// ErrNilTable indicates a nil *BaseTable or a nil matrix field.
	ErrNilTable = errors.New("iotable: table and all matrix fields must be non-nil")
	// ErrEmptyTable indicates a table with zero sectors or zero countries.
	ErrEmptyTable = errors.New("iotable: table must have at least one sector and one country")
	// ErrShape indicates a field whose dimensions disagree with the label lists.
	ErrShape = errors.New("iotable: field dimensions do not match sector/country counts")
	// ErrUnknownCountry indicates a sector label naming a country absent from Countries.
	ErrUnknownCountry = errors.New("iotable: sector label references unknown country")
	// ErrShareMissing indicates a sector with no entry in the share configuration.
	ErrShareMissing = errors.New("iotable: share missing for sector")
	// ErrShareRange indicates a share outside the closed interval [0,1].
	ErrShareRange = errors.New("iotable: share must lie in [0,1]")
)
