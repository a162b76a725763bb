package models

// DepartmentCodes lists the twelve short department codes the access
// gate and the branch tables operate over.
var DepartmentCodes = []string{
	"CIVIL", "CSE", "EEE", "ECE", "MECH", "IT",
	"PROD", "CHEM", "BIO-TECH", "AIDS", "IOT-CS", "AIML",
}

// branchByCode maps a short department code to the canonical branch
// label stored on project records.
var branchByCode = map[string]string{
	"CIVIL":    "B.E- CIVIL ENGINEERING",
	"CSE":      "B.E- COMPUTER SCIENCE AND ENGG.",
	"EEE":      "B.E- ELECTRICAL & ELECTRONICS ENGG.",
	"ECE":      "B.E- ELECTRONICS & COMMUNICATION ENGG.",
	"MECH":     "B.E- MECHANICAL ENGINEERING",
	"IT":       "B.E- INFORMATION TECHNOLOGY",
	"PROD":     "B.E- PRODUCTION ENGINEERING",
	"CHEM":     "B.TECH- CHEMICAL ENGINEERING",
	"BIO-TECH": "B.TECH- BIO TECHNOLOGY",
	"AIDS":     "B.E- ARTIFICIAL INTELLIGENCE AND DATA SCIENCE",
	"IOT-CS":   "B.E- INTERNET OF THINGS AND CYBER SECURITY",
	"AIML":     "B.E- ARTIFICIAL INTELLIGENCE AND MACHINE LEARNING",
}

// codeByBranch is the inverse of branchByCode
var codeByBranch = func() map[string]string {
	m := make(map[string]string, len(branchByCode))
	for code, branch := range branchByCode {
		m[branch] = code
	}
	return m
}()

// programmeCodes maps the three-digit programme segment of a roll
// number (characters 6..9) to a department code.
var programmeCodes = map[string]string{
	"732": "CIVIL",
	"733": "CSE",
	"734": "EEE",
	"735": "ECE",
	"736": "MECH",
	"737": "IT",
	"738": "PROD",
	"802": "CHEM",
	"805": "BIO-TECH",
	"771": "AIDS",
	"749": "IOT-CS",
	"729": "AIML",
}

// CanonicalBranch resolves a short department code to the canonical
// branch label. Unmapped codes are returned verbatim so ad-hoc filter
// values still match records that store them directly.
func CanonicalBranch(code string) string {
	if branch, ok := branchByCode[code]; ok {
		return branch
	}
	return code
}

// ShortBranch derives the short code for a canonical branch label,
// falling back to the stored value when no mapping exists.
func ShortBranch(branch string) string {
	if code, ok := codeByBranch[branch]; ok {
		return code
	}
	return branch
}

// BranchFromRoll extracts the department code embedded in a roll
// number. Returns false when the roll is too short or carries an
// unknown programme code.
func BranchFromRoll(roll string) (string, bool) {
	if len(roll) < 9 {
		return "", false
	}
	code, ok := programmeCodes[roll[6:9]]
	return code, ok
}
