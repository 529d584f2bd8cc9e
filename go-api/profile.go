package main

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// profileService owns the profile lifecycle: lazy upsert, enrichment with
// the user's name/avatar, head-insert and remove-by-id on the experience
// and education sequences, and the account delete cascade.
type profileService struct {
	store Store
}

/* ---------- Inputs ---------- */

// ProfileInput is the partial-update document for upsert. A field is
// applied only when supplied (non-empty); absent fields never clobber
// stored values. Skills arrive as one comma-separated string.
type ProfileInput struct {
	Company        string `json:"company"`
	Website        string `json:"website"`
	Location       string `json:"location"`
	Status         string `json:"status"`
	Bio            string `json:"bio"`
	GithubUsername string `json:"githubusername"`
	Skills         string `json:"skills"`
	Youtube        string `json:"youtube"`
	Twitter        string `json:"twitter"`
	Instagram      string `json:"instagram"`
	LinkedIn       string `json:"linkedin"`
	Facebook       string `json:"facebook"`
}

func (in ProfileInput) apply(p *Profile) {
	set := func(dst *string, v string) {
		if strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	set(&p.Company, in.Company)
	set(&p.Website, in.Website)
	set(&p.Location, in.Location)
	set(&p.Status, in.Status)
	set(&p.Bio, in.Bio)
	set(&p.GithubUsername, in.GithubUsername)
	if strings.TrimSpace(in.Skills) != "" {
		p.Skills = splitSkills(in.Skills)
	}
	set(&p.Social.Youtube, in.Youtube)
	set(&p.Social.Twitter, in.Twitter)
	set(&p.Social.Instagram, in.Instagram)
	set(&p.Social.LinkedIn, in.LinkedIn)
	set(&p.Social.Facebook, in.Facebook)
}

func splitSkills(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if v := strings.TrimSpace(part); v != "" {
			out = append(out, v)
		}
	}
	return out
}

type ExperienceInput struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	From        string `json:"from"`
	To          string `json:"to"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

type EducationInput struct {
	School       string `json:"school"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"fieldofstudy"`
	From         string `json:"from"`
	To           string `json:"to"`
	Current      bool   `json:"current"`
	Description  string `json:"description"`
}

/* ---------- Queries ---------- */

// GetOwn returns the caller's profile enriched with their name and avatar.
func (ps *profileService) GetOwn(callerID string) (*ProfileDTO, error) {
	p, err := ps.store.ProfileByUserID(callerID)
	if errors.Is(err, ErrStoreNotFound) {
		return nil, ErrProfileNotFound
	} else if err != nil {
		return nil, err
	}
	return ps.enrich(p)
}

// List returns every profile, each enriched with its owner's name and avatar.
func (ps *profileService) List() ([]ProfileDTO, error) {
	profiles, err := ps.store.Profiles()
	if err != nil {
		return nil, err
	}
	out := make([]ProfileDTO, 0, len(profiles))
	for i := range profiles {
		dto, err := ps.enrich(&profiles[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *dto)
	}
	return out, nil
}

// ByUserID returns one profile. A malformed user id is reported the same
// as an absent profile.
func (ps *profileService) ByUserID(userID string) (*ProfileDTO, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, ErrProfileNotFound
	}
	p, err := ps.store.ProfileByUserID(userID)
	if errors.Is(err, ErrStoreNotFound) {
		return nil, ErrProfileNotFound
	} else if err != nil {
		return nil, err
	}
	return ps.enrich(p)
}

func (ps *profileService) enrich(p *Profile) (*ProfileDTO, error) {
	dto := ProfileDTO{Profile: *p}
	u, err := ps.store.UserByID(p.UserID)
	if err == nil {
		dto.User = profileUser{ID: u.ID, Name: u.Name, Avatar: u.Avatar}
	} else if !errors.Is(err, ErrStoreNotFound) {
		return nil, err
	}
	return &dto, nil
}

/* ---------- Mutations ---------- */

// Upsert creates the caller's profile on first call and merge-updates it
// afterwards. The stored state ends up equal to the supplied fields merged
// onto whatever existed.
func (ps *profileService) Upsert(callerID string, in ProfileInput) (*ProfileDTO, error) {
	p, err := ps.store.ProfileByUserID(callerID)
	creating := errors.Is(err, ErrStoreNotFound)
	if creating {
		p = &Profile{
			UserID:     callerID,
			Experience: []Experience{},
			Education:  []Education{},
		}
	} else if err != nil {
		return nil, err
	}

	// status and skills must be present on first creation; afterwards any
	// subset of fields is a valid merge-update.
	if creating {
		var errs ValidationErrors
		if strings.TrimSpace(in.Status) == "" {
			errs = append(errs, FieldError{Msg: "Status is required", Param: "status"})
		}
		if strings.TrimSpace(in.Skills) == "" {
			errs = append(errs, FieldError{Msg: "Skills is required", Param: "skills"})
		}
		if len(errs) > 0 {
			return nil, errs
		}
	}
	in.apply(p)
	if err := ps.store.SaveProfile(p); err != nil {
		return nil, err
	}
	return ps.enrich(p)
}

// AddExperience head-inserts a new entry into the caller's experience
// sequence and returns the updated profile.
func (ps *profileService) AddExperience(callerID string, in ExperienceInput) (*ProfileDTO, error) {
	var errs ValidationErrors
	if strings.TrimSpace(in.Title) == "" {
		errs = append(errs, FieldError{Msg: "title is required", Param: "title"})
	}
	if strings.TrimSpace(in.Company) == "" {
		errs = append(errs, FieldError{Msg: "company is required", Param: "company"})
	}
	if strings.TrimSpace(in.From) == "" {
		errs = append(errs, FieldError{Msg: "date is required", Param: "from"})
	}
	if len(errs) > 0 {
		return nil, errs
	}

	p, err := ps.store.ProfileByUserID(callerID)
	if errors.Is(err, ErrStoreNotFound) {
		return nil, ErrProfileNotFound
	} else if err != nil {
		return nil, err
	}
	entry := Experience{
		ID:          newID(),
		Title:       in.Title,
		Company:     in.Company,
		Location:    in.Location,
		From:        in.From,
		To:          in.To,
		Current:     in.Current,
		Description: in.Description,
	}
	p.Experience = append([]Experience{entry}, p.Experience...)
	if err := ps.store.SaveProfile(p); err != nil {
		return nil, err
	}
	return ps.enrich(p)
}

// RemoveExperience deletes the entry with the given id from the caller's
// sequence. An unknown id leaves the sequence unchanged and is not an error.
func (ps *profileService) RemoveExperience(callerID, entryID string) error {
	p, err := ps.store.ProfileByUserID(callerID)
	if errors.Is(err, ErrStoreNotFound) {
		return ErrProfileNotFound
	} else if err != nil {
		return err
	}
	idx := -1
	for i := range p.Experience {
		if p.Experience[i].ID == entryID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}
	p.Experience = append(p.Experience[:idx], p.Experience[idx+1:]...)
	return ps.store.SaveProfile(p)
}

// AddEducation mirrors AddExperience for the education sequence.
func (ps *profileService) AddEducation(callerID string, in EducationInput) (*ProfileDTO, error) {
	var errs ValidationErrors
	if strings.TrimSpace(in.School) == "" {
		errs = append(errs, FieldError{Msg: "school is required", Param: "school"})
	}
	if strings.TrimSpace(in.Degree) == "" {
		errs = append(errs, FieldError{Msg: "degree is required", Param: "degree"})
	}
	if strings.TrimSpace(in.From) == "" {
		errs = append(errs, FieldError{Msg: "date is required", Param: "from"})
	}
	if len(errs) > 0 {
		return nil, errs
	}

	p, err := ps.store.ProfileByUserID(callerID)
	if errors.Is(err, ErrStoreNotFound) {
		return nil, ErrProfileNotFound
	} else if err != nil {
		return nil, err
	}
	entry := Education{
		ID:           newID(),
		School:       in.School,
		Degree:       in.Degree,
		FieldOfStudy: in.FieldOfStudy,
		From:         in.From,
		To:           in.To,
		Current:      in.Current,
		Description:  in.Description,
	}
	p.Education = append([]Education{entry}, p.Education...)
	if err := ps.store.SaveProfile(p); err != nil {
		return nil, err
	}
	return ps.enrich(p)
}

// RemoveEducation mirrors RemoveExperience.
func (ps *profileService) RemoveEducation(callerID, entryID string) error {
	p, err := ps.store.ProfileByUserID(callerID)
	if errors.Is(err, ErrStoreNotFound) {
		return ErrProfileNotFound
	} else if err != nil {
		return err
	}
	idx := -1
	for i := range p.Education {
		if p.Education[i].ID == entryID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}
	p.Education = append(p.Education[:idx], p.Education[idx+1:]...)
	return ps.store.SaveProfile(p)
}

// DeleteAccount removes the caller's posts, then profile, then user record,
// in that order. Best effort: a mid-sequence failure surfaces as a server
// error with no rollback.
func (ps *profileService) DeleteAccount(callerID string) error {
	if err := ps.store.DeletePostsByUserID(callerID); err != nil {
		return err
	}
	if err := ps.store.DeleteProfileByUserID(callerID); err != nil {
		return err
	}
	return ps.store.DeleteUser(callerID)
}
