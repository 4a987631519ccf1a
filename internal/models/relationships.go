package models

// KeyPerson is someone the user wants to stay intentional about.
type KeyPerson struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Relationship       string `json:"relationship"`
	PersonalityType    string `json:"personalityType,omitempty"`
	CommunicationNotes string `json:"communicationNotes,omitempty"`
	GratitudeNotes     string `json:"gratitudeNotes,omitempty"`
	CreatedAt          string `json:"createdAt"`
}

// KeyPersonUpdate is a merge patch for KeyPerson.
type KeyPersonUpdate struct {
	Name               *string
	Relationship       *string
	PersonalityType    *string
	CommunicationNotes *string
	GratitudeNotes     *string
}

// Apply merges the patch over p and returns the merged person.
func (u KeyPersonUpdate) Apply(p KeyPerson) KeyPerson {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Relationship != nil {
		p.Relationship = *u.Relationship
	}
	if u.PersonalityType != nil {
		p.PersonalityType = *u.PersonalityType
	}
	if u.CommunicationNotes != nil {
		p.CommunicationNotes = *u.CommunicationNotes
	}
	if u.GratitudeNotes != nil {
		p.GratitudeNotes = *u.GratitudeNotes
	}
	return p
}

// Anniversary is a dated event tied to a KeyPerson by id. The reference is
// weak: deleting the person cascades to its anniversaries.
type Anniversary struct {
	ID                   string `json:"id"`
	PersonID             string `json:"personId"`
	Title                string `json:"title"`
	Date                 string `json:"date"` // YYYY-MM-DD
	Recurring            bool   `json:"recurring"`
	NotificationsEnabled bool   `json:"notificationsEnabled"`
}

// AnniversaryUpdate is a merge patch for Anniversary. PersonID is not
// patchable; an anniversary stays with the person it was created for.
type AnniversaryUpdate struct {
	Title                *string
	Date                 *string
	Recurring            *bool
	NotificationsEnabled *bool
}

// Apply merges the patch over a and returns the merged anniversary.
func (u AnniversaryUpdate) Apply(a Anniversary) Anniversary {
	if u.Title != nil {
		a.Title = *u.Title
	}
	if u.Date != nil {
		a.Date = *u.Date
	}
	if u.Recurring != nil {
		a.Recurring = *u.Recurring
	}
	if u.NotificationsEnabled != nil {
		a.NotificationsEnabled = *u.NotificationsEnabled
	}
	return a
}
