// Package builder: constructor names used as error prefixes.
package builder

const (
	MethodIdentity         = "Identity"
	MethodConstant         = "Constant"
	MethodSequential       = "Sequential"
	MethodRandom           = "Random"
	MethodRandomLower      = "RandomLower"
	MethodRandomUpper      = "RandomUpper"
	MethodSequentialVector = "SequentialVector"
	MethodRandomVector     = "RandomVector"
)
