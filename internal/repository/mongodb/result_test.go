package mongodb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/noah-isme/college-portal-api/internal/models"
)

func TestResultRepository(t *testing.T) {
	mt := newMockT(t)
	ctx := context.Background()

	mt.Run("create", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		result := &models.Result{StudentID: "s1", ClassName: "FY-A", Subject: "Math", ExamID: "mid", Score: 0, Grade: "F", Status: "fail", ExamDate: time.Now()}
		require.NoError(t, NewResultRepository(mt.DB).Create(ctx, result))
		assert.NotEmpty(t, result.ID)
	})

	mt.Run("query", func(mt *mtest.T) {
		lo := 50.0
		mt.AddMockResponses(
			countResponse("db.results", 3),
			mtest.CreateCursorResponse(0, "db.results", mtest.FirstBatch,
				bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "studentId", Value: "s1"}, {Key: "score", Value: 91.0}},
				bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "studentId", Value: "s2"}, {Key: "score", Value: 64.5}},
			),
		)

		results, total, err := NewResultRepository(mt.DB).Query(ctx, models.ResultQuery{
			Filter:    models.ResultFilter{MinScore: &lo},
			Page:      1,
			Limit:     2,
			SortField: models.ResultSortScore,
			SortDesc:  true,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		require.Len(t, results, 2)
		assert.Equal(t, 64.5, results[1].Score)
	})
}
