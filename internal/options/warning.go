package options

import "fmt"

// Subject names the setting a Warning is about.
type Subject string

// Warning subjects.
const (
	SubjectLicense          Subject = "license"
	SubjectTestFramework    Subject = "testFramework"
	SubjectPHPVersion       Subject = "phpVersion"
	SubjectNamingConvention Subject = "namingConvention"
)

// Warning is a non-blocking diagnostic. For catalog subjects Rejected holds
// the unknown input and Substituted the default used instead. For the naming
// advisory Rejected holds the identifier and Substituted is empty.
type Warning struct {
	Subject     Subject
	Rejected    string
	Substituted string
}

// Message renders the warning as a console sentence.
func (w Warning) Message() string {
	switch w.Subject {
	case SubjectLicense:
		return fmt.Sprintf("%q is not a supported license. Using %s.", w.Rejected, w.Substituted)
	case SubjectTestFramework:
		return fmt.Sprintf("%q is not a supported testing framework. Using %s.", w.Rejected, w.Substituted)
	case SubjectPHPVersion:
		return fmt.Sprintf("%q is not a supported php version. Using version %s.", w.Rejected, w.Substituted)
	case SubjectNamingConvention:
		return fmt.Sprintf("If you are about to create a micro-package %q should optimally not contain a \"php\" notation in the project name.", w.Rejected)
	default:
		return fmt.Sprintf("%s: %q replaced by %q", w.Subject, w.Rejected, w.Substituted)
	}
}
