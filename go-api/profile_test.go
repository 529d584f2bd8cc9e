package main

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedUser(t *testing.T, st Store, name, email string) string {
	t.Helper()
	u := &User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		Avatar:       gravatarURL(email),
		PasswordHash: "x",
	}
	require.NoError(t, st.CreateUser(u))
	return u.ID
}

func newProfileService(t *testing.T) (*profileService, Store, string) {
	t.Helper()
	st := newMemStore()
	uid := seedUser(t, st, "Jess Dev", "jess@example.com")
	return &profileService{store: st}, st, uid
}

func TestUpsertCreatesWithDefaults(t *testing.T) {
	ps, _, uid := newProfileService(t)

	dto, err := ps.Upsert(uid, ProfileInput{Status: "Developer", Skills: "js, go"})
	require.NoError(t, err)

	assert.Equal(t, "Developer", dto.Status)
	assert.Equal(t, []string{"js", "go"}, []string(dto.Skills))
	assert.Empty(t, dto.Experience)
	assert.Empty(t, dto.Education)
	assert.Equal(t, uid, dto.UserID)
	assert.Equal(t, "Jess Dev", dto.User.Name)
}

func TestUpsertIsIdempotent(t *testing.T) {
	ps, st, uid := newProfileService(t)
	in := ProfileInput{Status: "Developer", Skills: "js, go", Company: "Acme"}

	_, err := ps.Upsert(uid, in)
	require.NoError(t, err)
	first, err := st.ProfileByUserID(uid)
	require.NoError(t, err)

	_, err = ps.Upsert(uid, in)
	require.NoError(t, err)
	second, err := st.ProfileByUserID(uid)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestUpsertMergeKeepsUnsuppliedFields(t *testing.T) {
	ps, _, uid := newProfileService(t)

	_, err := ps.Upsert(uid, ProfileInput{Status: "Developer", Skills: "js, go", Company: "Acme"})
	require.NoError(t, err)

	dto, err := ps.Upsert(uid, ProfileInput{Status: "Senior Developer"})
	require.NoError(t, err)

	assert.Equal(t, "Senior Developer", dto.Status)
	assert.Equal(t, "Acme", dto.Company)
	assert.Equal(t, []string{"js", "go"}, []string(dto.Skills))
}

func TestUpsertCreateValidation(t *testing.T) {
	ps, st, uid := newProfileService(t)

	_, err := ps.Upsert(uid, ProfileInput{})
	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 2)

	params := []string{verrs[0].Param, verrs[1].Param}
	assert.Contains(t, params, "status")
	assert.Contains(t, params, "skills")

	_, err = st.ProfileByUserID(uid)
	assert.ErrorIs(t, err, ErrStoreNotFound)
}

func TestGetOwnWithoutProfile(t *testing.T) {
	ps, _, uid := newProfileService(t)

	_, err := ps.GetOwn(uid)
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestByUserIDMalformedID(t *testing.T) {
	ps, _, _ := newProfileService(t)

	_, err := ps.ByUserID("not-a-uuid")
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestAddExperienceHeadInsert(t *testing.T) {
	ps, _, uid := newProfileService(t)
	_, err := ps.Upsert(uid, ProfileInput{Status: "Developer", Skills: "go"})
	require.NoError(t, err)

	_, err = ps.AddExperience(uid, ExperienceInput{Title: "Engineer", Company: "Acme", From: "2020-01-01"})
	require.NoError(t, err)
	dto, err := ps.AddExperience(uid, ExperienceInput{Title: "Senior Engineer", Company: "Globex", From: "2022-06-01"})
	require.NoError(t, err)

	require.Len(t, dto.Experience, 2)
	assert.Equal(t, "Senior Engineer", dto.Experience[0].Title)
	assert.Equal(t, "Engineer", dto.Experience[1].Title)
	assert.NotEmpty(t, dto.Experience[0].ID)
	assert.NotEqual(t, dto.Experience[0].ID, dto.Experience[1].ID)
}

func TestAddThenRemoveExperienceRestoresSequence(t *testing.T) {
	ps, _, uid := newProfileService(t)
	_, err := ps.Upsert(uid, ProfileInput{Status: "Developer", Skills: "go"})
	require.NoError(t, err)
	before, err := ps.AddExperience(uid, ExperienceInput{Title: "Engineer", Company: "Acme", From: "2020-01-01"})
	require.NoError(t, err)

	after, err := ps.AddExperience(uid, ExperienceInput{Title: "Contractor", Company: "Initech", From: "2023-01-01"})
	require.NoError(t, err)
	require.NoError(t, ps.RemoveExperience(uid, after.Experience[0].ID))

	dto, err := ps.GetOwn(uid)
	require.NoError(t, err)
	assert.Equal(t, before.Experience, dto.Experience)
}

func TestRemoveExperienceUnknownIDIsNoop(t *testing.T) {
	ps, _, uid := newProfileService(t)
	_, err := ps.Upsert(uid, ProfileInput{Status: "Developer", Skills: "go"})
	require.NoError(t, err)
	dto, err := ps.AddExperience(uid, ExperienceInput{Title: "Engineer", Company: "Acme", From: "2020-01-01"})
	require.NoError(t, err)

	require.NoError(t, ps.RemoveExperience(uid, "ffffffffffffffffffffffff"))

	got, err := ps.GetOwn(uid)
	require.NoError(t, err)
	assert.Equal(t, dto.Experience, got.Experience)
}

func TestAddExperienceValidationListsAllMissing(t *testing.T) {
	ps, _, uid := newProfileService(t)
	_, err := ps.Upsert(uid, ProfileInput{Status: "Developer", Skills: "go"})
	require.NoError(t, err)

	_, err = ps.AddExperience(uid, ExperienceInput{})
	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 3)
}

func TestAddExperienceWithoutProfile(t *testing.T) {
	ps, _, uid := newProfileService(t)

	_, err := ps.AddExperience(uid, ExperienceInput{Title: "Engineer", Company: "Acme", From: "2020-01-01"})
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestEducationLifecycle(t *testing.T) {
	ps, _, uid := newProfileService(t)
	_, err := ps.Upsert(uid, ProfileInput{Status: "Student", Skills: "go"})
	require.NoError(t, err)

	_, err = ps.AddEducation(uid, EducationInput{})
	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 3)

	dto, err := ps.AddEducation(uid, EducationInput{School: "MIT", Degree: "BSc", From: "2016-09-01"})
	require.NoError(t, err)
	require.Len(t, dto.Education, 1)

	require.NoError(t, ps.RemoveEducation(uid, dto.Education[0].ID))
	got, err := ps.GetOwn(uid)
	require.NoError(t, err)
	assert.Empty(t, got.Education)
}

func TestListEnrichesProfiles(t *testing.T) {
	ps, st, uid := newProfileService(t)
	other := seedUser(t, st, "Sam Ops", "sam@example.com")
	_, err := ps.Upsert(uid, ProfileInput{Status: "Developer", Skills: "go"})
	require.NoError(t, err)
	_, err = ps.Upsert(other, ProfileInput{Status: "SRE", Skills: "terraform"})
	require.NoError(t, err)

	out, err := ps.List()
	require.NoError(t, err)
	require.Len(t, out, 2)
	names := []string{out[0].User.Name, out[1].User.Name}
	assert.Contains(t, names, "Jess Dev")
	assert.Contains(t, names, "Sam Ops")
}

func TestDeleteAccountCascade(t *testing.T) {
	ps, st, uid := newProfileService(t)
	posts := &postService{store: st}

	_, err := ps.Upsert(uid, ProfileInput{Status: "Developer", Skills: "go"})
	require.NoError(t, err)
	_, err = posts.Create(uid, PostInput{Text: "hello"})
	require.NoError(t, err)
	_, err = posts.Create(uid, PostInput{Text: "world"})
	require.NoError(t, err)

	require.NoError(t, ps.DeleteAccount(uid))

	_, err = st.ProfileByUserID(uid)
	assert.ErrorIs(t, err, ErrStoreNotFound)
	_, err = st.UserByID(uid)
	assert.ErrorIs(t, err, ErrStoreNotFound)
	remaining, err := st.Posts()
	require.NoError(t, err)
	assert.Empty(t, remaining)
}
