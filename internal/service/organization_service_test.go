package service

import (
	"fmt"
	"testing"
	"time"

	"referral-coordination-backend/internal/models"
	"referral-coordination-backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrganizationRoundTrip(t *testing.T) {
	orgService, _ := newServices(t)

	created, err := orgService.Create(validOrgInput("Sunrise Clinic", models.RoleBoth))
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	fetched, err := orgService.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, "Sunrise Clinic", fetched.Name)
	assert.Equal(t, models.TypeClinic, fetched.Type)
	assert.Equal(t, models.RoleBoth, fetched.Role)
	assert.Equal(t, "front-desk@example.org", fetched.Contact.Email)
	assert.Equal(t, "5551234567", fetched.Contact.Phone)
	assert.Empty(t, fetched.CoverageAreas)
	assert.Empty(t, fetched.SentReferrals)
	assert.Empty(t, fetched.ReceivedReferrals)
}

func TestCreateOrganizationValidation(t *testing.T) {
	orgService, _ := newServices(t)

	input := CreateOrganizationInput{
		Name: "",
		Type: "HOSPITAL",
		Role: "OBSERVER",
		Contact: models.Contact{
			Email: "not-an-email",
			Phone: "555",
		},
	}
	_, err := orgService.Create(input)

	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)

	// Every violated field is reported
	fields := make([]string, 0, len(validationErr.Details))
	for _, d := range validationErr.Details {
		fields = append(fields, d.Field)
	}
	assert.ElementsMatch(t, []string{"name", "type", "role", "contact.email", "contact.phone"}, fields)
}

func TestListOrganizationsNewestFirst(t *testing.T) {
	orgService, _ := newServices(t)

	first, err := orgService.Create(validOrgInput("First Clinic", models.RoleSender))
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	second, err := orgService.Create(validOrgInput("Second Clinic", models.RoleReceiver))
	require.NoError(t, err)

	orgs, err := orgService.List()
	require.NoError(t, err)
	require.Len(t, orgs, 2)
	assert.Equal(t, second.ID, orgs[0].ID)
	assert.Equal(t, first.ID, orgs[1].ID)
}

func TestListOrganizationsPagination(t *testing.T) {
	orgService, _ := newServices(t)

	for i := 1; i <= 5; i++ {
		_, err := orgService.Create(validOrgInput(fmt.Sprintf("Clinic %d", i), models.RoleBoth))
		require.NoError(t, err)
		time.Sleep(5 * time.Millisecond)
	}

	orgs, pagination, err := orgService.ListPage(2, 2)
	require.NoError(t, err)
	require.NotNil(t, pagination)
	assert.Len(t, orgs, 2)
	assert.Equal(t, 2, pagination.CurrentPage)
	assert.Equal(t, 3, pagination.TotalPages)
	assert.Equal(t, int64(5), pagination.TotalCount)
	assert.Equal(t, 2, pagination.Limit)

	// Newest first: page 2 of limit 2 holds the third and second created
	assert.Equal(t, "Clinic 3", orgs[0].Name)
	assert.Equal(t, "Clinic 2", orgs[1].Name)

	// Out-of-range parameters fall back to sane defaults
	orgs, pagination, err = orgService.ListPage(0, 0)
	require.NoError(t, err)
	assert.Len(t, orgs, 5)
	assert.Equal(t, 1, pagination.CurrentPage)
	assert.Equal(t, DefaultPageLimit, pagination.Limit)
}

func TestGetOrganizationNotFound(t *testing.T) {
	orgService, _ := newServices(t)

	_, err := orgService.GetByID("missing-id")

	var notFoundErr *apperrors.NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
	assert.Equal(t, "Organization not found", notFoundErr.Message)
}

func TestReplaceCoverageAreas(t *testing.T) {
	orgService, _ := newServices(t)

	org, err := orgService.Create(validOrgInput("Coverage Clinic", models.RoleBoth))
	require.NoError(t, err)

	initial := []models.CoverageArea{
		{State: "CA", County: strPtr("Alameda")},
		{State: "CA", City: strPtr("Fresno")},
	}
	updated, err := orgService.ReplaceCoverageAreas(org.ID, initial)
	require.NoError(t, err)
	require.Len(t, updated.CoverageAreas, 2)

	replacement := []models.CoverageArea{
		{State: "NV", ZipCode: strPtr("89101")},
	}
	updated, err = orgService.ReplaceCoverageAreas(org.ID, replacement)
	require.NoError(t, err)
	require.Len(t, updated.CoverageAreas, 1)
	assert.Equal(t, "NV", updated.CoverageAreas[0].State)
}

func TestReplaceCoverageAreasEmptySetRejected(t *testing.T) {
	orgService, _ := newServices(t)

	org, err := orgService.Create(validOrgInput("Coverage Clinic", models.RoleBoth))
	require.NoError(t, err)

	_, err = orgService.ReplaceCoverageAreas(org.ID, []models.CoverageArea{{State: "CA"}})
	require.NoError(t, err)

	_, err = orgService.ReplaceCoverageAreas(org.ID, nil)
	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)

	// Existing set is completely unchanged
	fetched, err := orgService.GetByID(org.ID)
	require.NoError(t, err)
	require.Len(t, fetched.CoverageAreas, 1)
	assert.Equal(t, "CA", fetched.CoverageAreas[0].State)
}

func TestReplaceCoverageAreasMissingState(t *testing.T) {
	orgService, _ := newServices(t)

	org, err := orgService.Create(validOrgInput("Coverage Clinic", models.RoleBoth))
	require.NoError(t, err)

	_, err = orgService.ReplaceCoverageAreas(org.ID, []models.CoverageArea{{State: "CA"}, {State: ""}})

	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Len(t, validationErr.Details, 1)
	assert.Equal(t, "coverageAreas[1].state", validationErr.Details[0].Field)
}

func TestReplaceCoverageAreasUnknownOrganization(t *testing.T) {
	orgService, _ := newServices(t)

	_, err := orgService.ReplaceCoverageAreas("missing-id", []models.CoverageArea{{State: "CA"}})

	var notFoundErr *apperrors.NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
}

func TestUpdateOrganizationPartial(t *testing.T) {
	orgService, _ := newServices(t)

	org, err := orgService.Create(validOrgInput("Old Name", models.RoleSender))
	require.NoError(t, err)

	updated, err := orgService.Update(org.ID, UpdateOrganizationInput{Name: strPtr("New Name")})
	require.NoError(t, err)
	assert.Equal(t, "New Name", updated.Name)
	// Absent fields are left unchanged
	assert.Equal(t, models.TypeClinic, updated.Type)
	assert.Equal(t, models.RoleSender, updated.Role)
	assert.Equal(t, "front-desk@example.org", updated.Contact.Email)

	updated, err = orgService.Update(org.ID, UpdateOrganizationInput{
		Role:    strPtr(models.RoleBoth),
		Contact: &models.Contact{Email: "admin@example.org", Phone: "5559876543"},
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleBoth, updated.Role)
	assert.Equal(t, "admin@example.org", updated.Contact.Email)
	assert.Equal(t, "New Name", updated.Name)
}

func TestUpdateOrganizationNoFields(t *testing.T) {
	orgService, _ := newServices(t)

	org, err := orgService.Create(validOrgInput("Clinic", models.RoleBoth))
	require.NoError(t, err)

	_, err = orgService.Update(org.ID, UpdateOrganizationInput{})

	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "No fields to update", validationErr.Message)
}

func TestUpdateOrganizationInvalidEnum(t *testing.T) {
	orgService, _ := newServices(t)

	org, err := orgService.Create(validOrgInput("Clinic", models.RoleBoth))
	require.NoError(t, err)

	_, err = orgService.Update(org.ID, UpdateOrganizationInput{Role: strPtr("OBSERVER")})

	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)

	fetched, err := orgService.GetByID(org.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleBoth, fetched.Role)
}

func TestUpdateOrganizationNotFound(t *testing.T) {
	orgService, _ := newServices(t)

	_, err := orgService.Update("missing-id", UpdateOrganizationInput{Name: strPtr("New Name")})

	var notFoundErr *apperrors.NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
}

func TestDeleteOrganizationWithoutReferrals(t *testing.T) {
	orgService, _ := newServices(t)

	org, err := orgService.Create(validOrgInput("Deletable Clinic", models.RoleBoth))
	require.NoError(t, err)
	_, err = orgService.ReplaceCoverageAreas(org.ID, []models.CoverageArea{{State: "CA"}})
	require.NoError(t, err)

	require.NoError(t, orgService.Delete(org.ID))

	_, err = orgService.GetByID(org.ID)
	var notFoundErr *apperrors.NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
}

func TestDeleteOrganizationBlockedByReferrals(t *testing.T) {
	orgService, referralService := newServices(t)

	sender, err := orgService.Create(validOrgInput("Sender Clinic", models.RoleSender))
	require.NoError(t, err)
	receiver, err := orgService.Create(validOrgInput("Receiver Agency", models.RoleReceiver))
	require.NoError(t, err)

	_, err = referralService.Create(CreateReferralInput{
		SenderOrgID:     sender.ID,
		ReceiverOrgID:   receiver.ID,
		PatientName:     "Pat Doe",
		InsuranceNumber: "INS-0001",
	})
	require.NoError(t, err)

	// Blocked in both reference directions
	for _, id := range []string{sender.ID, receiver.ID} {
		err = orgService.Delete(id)
		var conflictErr *apperrors.ConflictError
		require.ErrorAs(t, err, &conflictErr)
		assert.Equal(t, "Cannot delete organization with 1 existing referrals", conflictErr.Message)

		// Organization remains retrievable afterwards
		_, err = orgService.GetByID(id)
		require.NoError(t, err)
	}
}

func TestDeleteOrganizationNotFound(t *testing.T) {
	orgService, _ := newServices(t)

	err := orgService.Delete("missing-id")

	var notFoundErr *apperrors.NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
}
