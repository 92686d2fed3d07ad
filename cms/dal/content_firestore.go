package dal

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/gettupp/backoffice/cms/domain"
	"github.com/gettupp/backoffice/common"
	"github.com/gettupp/backoffice/framework/connection"
)

type ContentFirestore struct {
	firestoreClientFun connection.FirestoreFromContextFun
}

func NewContentFirestore(ctx context.Context, projectID string) (*ContentFirestore, error) {
	fs, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return NewContentFirestoreWithClient(
		func(ctx context.Context) *firestore.Client {
			return fs
		},
	), nil
}

func NewContentFirestoreWithClient(fun connection.FirestoreFromContextFun) *ContentFirestore {
	return &ContentFirestore{
		firestoreClientFun: fun,
	}
}

func (d *ContentFirestore) doc(ctx context.Context, name string) *firestore.DocumentRef {
	return d.firestoreClientFun(ctx).Collection(common.SiteContentCollection).Doc(name)
}

func (d *ContentFirestore) get(ctx context.Context, name string, dst interface{}) error {
	docSnap, err := d.doc(ctx, name).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return domain.ErrContentNotFound
		}

		return err
	}

	return docSnap.DataTo(dst)
}

func (d *ContentFirestore) GetHero(ctx context.Context) (*domain.Hero, error) {
	var hero domain.Hero
	if err := d.get(ctx, domain.HeroDoc, &hero); err != nil {
		return nil, err
	}

	return &hero, nil
}

func (d *ContentFirestore) GetPricing(ctx context.Context) ([]domain.PricingTier, error) {
	var pricing domain.PricingContent
	if err := d.get(ctx, domain.PricingDoc, &pricing); err != nil {
		return nil, err
	}

	return pricing.Tiers, nil
}

func (d *ContentFirestore) GetPortfolio(ctx context.Context) ([]domain.PortfolioItem, error) {
	var portfolio domain.PortfolioContent
	if err := d.get(ctx, domain.PortfolioDoc, &portfolio); err != nil {
		return nil, err
	}

	return portfolio.Items, nil
}

// Save overwrites the three content documents in a single batch.
func (d *ContentFirestore) Save(ctx context.Context, content *domain.SiteContent) error {
	batch := d.firestoreClientFun(ctx).Batch()

	batch.Set(d.doc(ctx, domain.HeroDoc), content.Hero)
	batch.Set(d.doc(ctx, domain.PricingDoc), domain.PricingContent{Tiers: content.Pricing})
	batch.Set(d.doc(ctx, domain.PortfolioDoc), domain.PortfolioContent{Items: content.Portfolio})

	_, err := batch.Commit(ctx)

	return err
}
