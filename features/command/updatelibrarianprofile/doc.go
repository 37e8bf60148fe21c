// Package updatelibrarianprofile implements the Update Librarian Profile use case.
//
// Name and sex can be changed after registration. The staff number and email
// are assigned at registration and stay fixed, so the command cannot address
// them.
package updatelibrarianprofile
