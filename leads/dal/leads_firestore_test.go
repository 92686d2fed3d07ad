package dal

import (
	"context"
	"testing"

	"cloud.google.com/go/firestore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gettupp/backoffice/common"
	testtools "github.com/gettupp/backoffice/common/test_tools"
	"github.com/gettupp/backoffice/leads/domain"
)

func newTestLeadsFirestore(t *testing.T) *LeadsFirestore {
	testtools.SkipWithoutEmulator(t)

	d, err := NewLeadsFirestore(context.Background(), common.TestProjectID)
	require.NoError(t, err)

	return d
}

func TestLeadsFirestore_CreateGetUpdate(t *testing.T) {
	ctx := context.Background()
	d := newTestLeadsFirestore(t)

	id, err := d.Create(ctx, &domain.Lead{
		Name:               "Roxy Bar",
		Venue:              "Roxy Bar",
		Email:              "owner@roxy.bar",
		Phone:              "6125550100",
		Status:             domain.LeadStatusNew,
		QualificationScore: domain.DefaultQualificationScore,
		Source:             domain.SourceWebsite,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	lead, err := d.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, lead.ID)
	assert.Equal(t, "Roxy Bar", lead.Name)
	assert.False(t, lead.CreatedAt.IsZero())

	updated, err := d.Update(ctx, id, []firestore.Update{{Path: "status", Value: domain.LeadStatusContacted}})
	require.NoError(t, err)
	assert.Equal(t, domain.LeadStatusContacted, updated.Status)
	assert.Equal(t, "6125550100", updated.Phone)
	assert.True(t, updated.UpdatedAt.After(lead.UpdatedAt) || updated.UpdatedAt.Equal(lead.UpdatedAt))
}

func TestLeadsFirestore_NotFound(t *testing.T) {
	ctx := context.Background()
	d := newTestLeadsFirestore(t)

	_, err := d.Get(ctx, "missing-lead")
	assert.ErrorIs(t, err, domain.ErrLeadNotFound)

	_, err = d.Update(ctx, "missing-lead", []firestore.Update{{Path: "status", Value: domain.LeadStatusBooked}})
	assert.ErrorIs(t, err, domain.ErrLeadNotFound)
}

func TestLeadsFirestore_ListByStatus(t *testing.T) {
	ctx := context.Background()
	d := newTestLeadsFirestore(t)

	_, err := d.Create(ctx, &domain.Lead{Name: "Declined Venue", Email: "d@venue.com", Status: domain.LeadStatusDeclined})
	require.NoError(t, err)

	leads, err := d.List(ctx, domain.ListFilter{Status: domain.LeadStatusDeclined, Limit: 50})
	require.NoError(t, err)
	require.NotEmpty(t, leads)

	for _, l := range leads {
		assert.Equal(t, domain.LeadStatusDeclined, l.Status)
	}
}
