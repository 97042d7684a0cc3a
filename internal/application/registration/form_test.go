package registration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/owl-lion/access-hub/internal/domain/profile"
	"github.com/owl-lion/access-hub/internal/domain/shared"
)

// fakeBackend records calls and plays back canned answers.
type fakeBackend struct {
	getProfile *profile.StudentProfile
	getErr     error
	saveErr    error

	saveCalls int
	saved     profile.StudentProfile
}

func (f *fakeBackend) GetStudent(ctx context.Context, studentID string) (*profile.StudentProfile, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getProfile, nil
}

func (f *fakeBackend) SaveStudent(ctx context.Context, p profile.StudentProfile) (*profile.StudentProfile, error) {
	f.saveCalls++
	f.saved = p
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	echo := p
	return &echo, nil
}

func fillRequired(d *profile.Draft) {
	d.SetStudentID("12345678")
	d.SetDisability(profile.ADHD)
	d.SetLearningStyle("Visual Learning")
}

func TestForm_InvalidDraft_NeverReachesBackend(t *testing.T) {
	backend := &fakeBackend{}
	form := NewForm(backend, nil)

	// Learning style left unset.
	form.Draft().SetStudentID("12345678")
	form.Draft().SetDisability(profile.Dyslexia)

	result := form.ValidateAndSubmit(context.Background())
	assert.False(t, result.OK())
	assert.Contains(t, result.Errors, profile.FieldLearningStyle)
	assert.Zero(t, backend.saveCalls, "validation failure short-circuits the submit")
	assert.False(t, form.Draft().Finalized())
}

func TestForm_BackendRejection_KeepsDraftEditable(t *testing.T) {
	backend := &fakeBackend{saveErr: shared.NewDomainError("platform", "SaveStudent",
		shared.ErrExternalService, "503")}
	form := NewForm(backend, nil)
	fillRequired(form.Draft())
	form.Draft().SetDisplayName("Jordan")

	result := form.ValidateAndSubmit(context.Background())
	assert.False(t, result.OK())
	assert.Nil(t, result.Errors, "a transport failure is not a field error")
	assert.NotEmpty(t, result.Message)

	// Draft intact and resubmittable.
	assert.False(t, form.Draft().Finalized())
	assert.Equal(t, "Jordan", form.Draft().Profile().DisplayName)

	backend.saveErr = nil
	assert.True(t, form.ValidateAndSubmit(context.Background()).OK())
	assert.Equal(t, 2, backend.saveCalls)
}

func TestForm_Success_FinalizesAndSignals(t *testing.T) {
	backend := &fakeBackend{}
	form := NewForm(backend, nil)
	fillRequired(form.Draft())
	form.Draft().AddFiles([]profile.FileHandle{{Name: "iep.pdf", Size: 2048}})

	var signaled *profile.StudentProfile
	form.OnFinalized(func(p profile.StudentProfile) { signaled = &p })

	result := form.ValidateAndSubmit(context.Background())
	require.True(t, result.OK())
	require.NotNil(t, result.Profile)

	assert.True(t, form.Draft().Finalized())
	require.NotNil(t, signaled, "success fires the downstream signal")
	assert.Equal(t, profile.CampusID("12345678"), signaled.StudentID)

	// File handles ride along with the submission.
	require.Len(t, backend.saved.UploadedFiles, 1)
	assert.Equal(t, "iep.pdf", backend.saved.UploadedFiles[0].Name)
}

func TestForm_Mount_PrefillsFromExistingRecord(t *testing.T) {
	backend := &fakeBackend{getProfile: &profile.StudentProfile{
		StudentID:   "87654321",
		DisplayName: "Returning Student",
	}}
	form := NewForm(backend, nil)
	form.Draft().SetDisplayName("Typed Before Mount")

	form.Mount(context.Background(), "87654321")
	assert.Equal(t, "Returning Student", form.Draft().Profile().DisplayName,
		"the fetched record overwrites the whole draft")
}

func TestForm_Mount_FetchFailureLeavesBlankDraft(t *testing.T) {
	backend := &fakeBackend{getErr: shared.NewDomainError("platform", "GetStudent",
		shared.ErrNotFound, "404")}
	form := NewForm(backend, nil)

	form.Mount(context.Background(), "11112222")
	assert.Equal(t, profile.StudentProfile{}, form.Draft().Profile(),
		"first-time students start from a blank draft")
}
