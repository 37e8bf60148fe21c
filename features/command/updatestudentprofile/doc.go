// Package updatestudentprofile implements the Update Student Profile use case.
//
// Name, sex, and class standing can be changed after registration. The
// student number and email are assigned at registration and stay fixed, so
// the command cannot address them.
package updatestudentprofile
