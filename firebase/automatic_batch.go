package firebase

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/hashicorp/go-multierror"
)

const maxBatchSize = 500

type AutomaticWriteBatch struct {
	fs      *firestore.Client
	batches []*firestore.WriteBatch
	i       int
	size    int
	limit   int
}

// NewAutomaticWriteBatch allows making firestore batch requests with more than
// limit write operations without keeping track of the batch size.
func NewAutomaticWriteBatch(fs *firestore.Client, limit int) *AutomaticWriteBatch {
	if limit <= 0 || limit > maxBatchSize {
		limit = maxBatchSize
	}

	return &AutomaticWriteBatch{
		fs:      fs,
		batches: []*firestore.WriteBatch{fs.Batch()},
		i:       0,
		size:    0,
		limit:   limit,
	}
}

// Commit commits every pending batch, sequentially. A failed batch does not stop
// the following ones; all failures are returned together.
func (b *AutomaticWriteBatch) Commit(ctx context.Context) (committed int, err error) {
	var errs *multierror.Error

	for i, batch := range b.batches {
		if i == b.i && b.size == 0 {
			break
		}

		if _, commitErr := batch.Commit(ctx); commitErr != nil {
			errs = multierror.Append(errs, commitErr)
			continue
		}

		committed++
	}

	b.i = 0
	b.size = 0
	b.batches = []*firestore.WriteBatch{b.fs.Batch()}

	return committed, errs.ErrorOrNil()
}

// Batches returns how many batches hold pending operations.
func (b *AutomaticWriteBatch) Batches() int {
	if b.size == 0 {
		return b.i
	}

	return b.i + 1
}

func (b *AutomaticWriteBatch) addOperation() *AutomaticWriteBatch {
	b.size++
	if b.size >= b.limit {
		b.batches = append(b.batches, b.fs.Batch())
		b.size = 0
		b.i++
	}

	return b
}

// Create adds a Create operation to the batch.
// See DocumentRef.Create for details.
func (b *AutomaticWriteBatch) Create(dr *firestore.DocumentRef, data interface{}) *AutomaticWriteBatch {
	b.batches[b.i].Create(dr, data)
	return b.addOperation()
}

// Set adds a Set operation to the batch.
// See DocumentRef.Set for details.
func (b *AutomaticWriteBatch) Set(dr *firestore.DocumentRef, data interface{}, opts ...firestore.SetOption) *AutomaticWriteBatch {
	b.batches[b.i].Set(dr, data, opts...)
	return b.addOperation()
}

// Delete adds a Delete operation to the batch.
// See DocumentRef.Delete for details.
func (b *AutomaticWriteBatch) Delete(dr *firestore.DocumentRef, opts ...firestore.Precondition) *AutomaticWriteBatch {
	b.batches[b.i].Delete(dr, opts...)
	return b.addOperation()
}

// Update adds an Update operation to the batch.
// See DocumentRef.Update for details.
func (b *AutomaticWriteBatch) Update(dr *firestore.DocumentRef, data []firestore.Update, opts ...firestore.Precondition) *AutomaticWriteBatch {
	b.batches[b.i].Update(dr, data, opts...)
	return b.addOperation()
}
