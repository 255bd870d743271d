/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package diagnostic

import "errors"

// Sentinel errors for expression construction, lookup and transformation.
var (
	// ErrSyntax indicates malformed placeholder syntax.
	ErrSyntax = errors.New("expression syntax error")

	// ErrUndefinedParameterType indicates a {name} with no registered parameter type.
	ErrUndefinedParameterType = errors.New("undefined parameter type")

	// ErrInvalidParameterTypeName indicates a parameter type name with reserved characters.
	ErrInvalidParameterTypeName = errors.New("invalid parameter type name")

	// ErrDuplicateParameterType indicates a second definition under an existing name.
	ErrDuplicateParameterType = errors.New("duplicate parameter type")

	// ErrPreferentialConflict indicates two preferential parameter types share a regexp.
	ErrPreferentialConflict = errors.New("conflicting preferential parameter types")

	// ErrAmbiguousParameterType indicates a capture group matches several parameter types.
	ErrAmbiguousParameterType = errors.New("ambiguous parameter type")

	// ErrAnchorsNotPermitted indicates a placeholder expression written with regexp anchors.
	ErrAnchorsNotPermitted = errors.New("anchors are not permitted in placeholder expressions")

	// ErrTransform indicates matched text could not be converted to its target type.
	ErrTransform = errors.New("transform failed")

	// ErrBackend indicates the pattern back end could not be resolved or rejected a pattern.
	ErrBackend = errors.New("pattern back end error")
)
