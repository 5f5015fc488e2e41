package domain

import "time"

// Document type keys understood by the completeness scorer. The registry is
// presence-only: content validation is out of scope.
const (
	DocTypePassport     = "passport"
	DocTypeVisa         = "visa"
	DocTypePayslips     = "payslips"
	DocTypeProofOfFunds = "proofOfFunds"
	DocTypeStudentID    = "studentId"
	DocTypeCOE          = "coe"
	DocTypeReference    = "reference"
	DocTypeIDSecondary  = "idSecondary"
	DocTypeOther        = "other"
)

var documentTypes = map[string]bool{
	DocTypePassport:     true,
	DocTypeVisa:         true,
	DocTypePayslips:     true,
	DocTypeProofOfFunds: true,
	DocTypeStudentID:    true,
	DocTypeCOE:          true,
	DocTypeReference:    true,
	DocTypeIDSecondary:  true,
	DocTypeOther:        true,
}

// OptionalDocumentTypes feed the non-gating "additional documents" section.
var OptionalDocumentTypes = []string{DocTypeReference, DocTypeIDSecondary, DocTypeOther}

func KnownDocumentType(t string) bool {
	return documentTypes[t]
}

// DocumentRef is the stored metadata for one uploaded document. Binary
// content lives elsewhere; only the key and pointer are kept here.
type DocumentRef struct {
	Type       string    `json:"type"`
	FileName   string    `json:"file_name"`
	URL        string    `json:"url"`
	UploadedOn time.Time `json:"uploaded_on"`
}
