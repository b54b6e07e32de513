package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// CVEntry is one uploaded CV stored inside the profile's jsonb column.
type CVEntry struct {
	ID         string    `json:"id"`
	URL        string    `json:"url"`
	FileName   string    `json:"fileName,omitempty"`
	UploadedAt time.Time `json:"uploadedAt"`
}

type CandidateProfile struct {
	BaseModel
	UserID   string         `gorm:"type:uuid;uniqueIndex;not null" json:"userId"`
	Phone    string         `json:"phone,omitempty"`
	Location string         `json:"location,omitempty"`
	Bio      string         `json:"bio,omitempty"`
	Skills   datatypes.JSON `gorm:"type:jsonb" json:"skills"`
	CVs      datatypes.JSON `gorm:"type:jsonb" json:"cvs"`
}

// SkillList decodes the jsonb skills column. A missing column decodes to
// an empty slice, never nil-panics.
func (p *CandidateProfile) SkillList() []string {
	var skills []string
	if len(p.Skills) > 0 {
		_ = json.Unmarshal(p.Skills, &skills)
	}
	if skills == nil {
		skills = []string{}
	}
	return skills
}

func (p *CandidateProfile) SetSkills(skills []string) error {
	if skills == nil {
		skills = []string{}
	}
	raw, err := json.Marshal(skills)
	if err != nil {
		return err
	}
	p.Skills = datatypes.JSON(raw)
	return nil
}

// CVList decodes the jsonb cvs column, newest last (append order).
func (p *CandidateProfile) CVList() []CVEntry {
	var cvs []CVEntry
	if len(p.CVs) > 0 {
		_ = json.Unmarshal(p.CVs, &cvs)
	}
	if cvs == nil {
		cvs = []CVEntry{}
	}
	return cvs
}

func (p *CandidateProfile) SetCVs(cvs []CVEntry) error {
	if cvs == nil {
		cvs = []CVEntry{}
	}
	raw, err := json.Marshal(cvs)
	if err != nil {
		return err
	}
	p.CVs = datatypes.JSON(raw)
	return nil
}

// LatestCV returns the most recently uploaded CV, or nil when none exist.
func (p *CandidateProfile) LatestCV() *CVEntry {
	cvs := p.CVList()
	if len(cvs) == 0 {
		return nil
	}
	latest := cvs[0]
	for _, cv := range cvs[1:] {
		if cv.UploadedAt.After(latest.UploadedAt) {
			latest = cv
		}
	}
	return &latest
}

// FindCV looks a CV up by id among this profile's entries.
func (p *CandidateProfile) FindCV(cvID string) *CVEntry {
	for _, cv := range p.CVList() {
		if cv.ID == cvID {
			return &cv
		}
	}
	return nil
}
