package review

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"

	"github.com/RazanRezq/jadara-sub002/internal/audit"
	"github.com/RazanRezq/jadara-sub002/internal/auth"
	"github.com/RazanRezq/jadara-sub002/internal/database"
	"github.com/RazanRezq/jadara-sub002/internal/logger"
	"github.com/RazanRezq/jadara-sub002/internal/middleware"
	"github.com/RazanRezq/jadara-sub002/internal/model"
	"github.com/RazanRezq/jadara-sub002/internal/notification"
	"github.com/RazanRezq/jadara-sub002/internal/repository"
	"github.com/RazanRezq/jadara-sub002/internal/review"
	"github.com/RazanRezq/jadara-sub002/internal/testutil"
)

var testDB *database.DBinstanceStruct

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	var err error
	var dbTeardown func(context.Context, ...testcontainers.TerminateOption) error
	dbTeardown, testDB, err = database.GetTestDB()
	if err != nil {
		os.Exit(1)
	}
	code := m.Run()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if dbTeardown != nil {
		_ = dbTeardown(ctx)
	}
	os.Exit(code)
}

func newRouter() *gin.Engine {
	log := logger.Discard()
	users := repository.NewUserRepository(testDB)
	broadcaster := notification.NewBroadcaster(users, repository.NewNotificationRepository(testDB), log)
	svc := review.NewService(
		repository.NewReviewRepository(testDB),
		repository.NewApplicantRepository(testDB),
		broadcaster,
		audit.NewRecorder(repository.NewAuditRepository(testDB)),
		log,
	)
	rc := NewController(svc)

	r := gin.New()
	g := r.Group("/reviews", middleware.RequireAuth(testDB), middleware.CheckRole(model.StaffRoles()...))
	g.POST("", rc.Submit)
	g.GET("/applicant/:applicantId", rc.ByApplicant)
	g.GET("/mine/:applicantId", rc.Mine)
	g.GET("/average/:applicantId", rc.Average)
	g.POST("/batch-badges", rc.BatchBadges)
	g.GET("/rating-distribution", rc.RatingDistribution)
	return r
}

func token(t *testing.T, u model.User) string {
	t.Helper()
	tok, err := auth.GetAccessToken(t, testDB, u.Username, database.TestSeedPassword)
	require.NoError(t, err)
	return tok
}

func submitBody(applicantID uuid.UUID, rating int, decision model.Decision) map[string]any {
	return map[string]any{
		"applicantId":  applicantID,
		"rating":       rating,
		"decision":     decision,
		"pros":         []string{"clear communicator"},
		"cons":         []string{},
		"privateNotes": "salary expectations are high",
		"skillRatings": map[string]int{"go": 4},
	}
}

func applicantStatus(t *testing.T, id uuid.UUID) model.ApplicantStatus {
	t.Helper()
	var a model.Applicant
	require.NoError(t, testDB.First(&a, "id = ?", id).Error)
	return a.Status
}

func countNotifications(t *testing.T, applicantID uuid.UUID) int64 {
	t.Helper()
	var n int64
	require.NoError(t, testDB.Model(&model.Notification{}).
		Where("related_id = ? AND type = ?", applicantID, model.NotificationReviewSubmitted).
		Count(&n).Error)
	return n
}

// A resubmission replaces the stored review, so it carries the full payload
// (rating and decision) rather than only the changed fields.
func TestSubmitFirstReviewThenUpdate(t *testing.T) {
	r := newRouter()
	applicant, err := database.CreateTestApplicant(testDB, model.ApplicantStatusNew, true)
	require.NoError(t, err)
	tok := token(t, database.TestReviewer1)

	rec, resp := testutil.MakeJSONRequest(submitBody(applicant.ID, 4, model.DecisionRecommended), tok, r, "/reviews", http.MethodPost)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, true, resp["isNewReview"])
	assert.Equal(t, "Review submitted successfully", resp["message"])
	assert.Equal(t, string(model.ApplicantStatusEvaluated), resp["applicantStatus"])
	first := resp["review"].(map[string]any)
	assert.EqualValues(t, 4, first["rating"])
	assert.Equal(t, model.ApplicantStatusEvaluated, applicantStatus(t, applicant.ID))

	staff, err := database.CountActiveStaff(testDB)
	require.NoError(t, err)
	assert.Equal(t, staff-1, countNotifications(t, applicant.ID))

	var recipients []uuid.UUID
	require.NoError(t, testDB.Model(&model.Notification{}).
		Where("related_id = ?", applicant.ID).
		Pluck("recipient_id", &recipients).Error)
	assert.NotContains(t, recipients, database.TestReviewer1.ID)
	assert.NotContains(t, recipients, database.TestInactiveReviewer.ID)

	rec, resp = testutil.MakeJSONRequest(submitBody(applicant.ID, 2, model.DecisionNotRecommended), tok, r, "/reviews", http.MethodPost)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, false, resp["isNewReview"])
	assert.Equal(t, "Review updated successfully", resp["message"])
	second := resp["review"].(map[string]any)
	assert.Equal(t, first["id"], second["id"])
	assert.EqualValues(t, 2, second["rating"])

	assert.Equal(t, staff-1, countNotifications(t, applicant.ID), "updates do not broadcast")

	var count int64
	require.NoError(t, testDB.Model(&model.Review{}).Where("applicant_id = ?", applicant.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	var audits int64
	require.NoError(t, testDB.Model(&model.AuditLog{}).
		Where("resource_id = ? AND action IN ?", second["id"], []string{audit.ActionReviewCreated, audit.ActionReviewUpdated}).
		Count(&audits).Error)
	assert.Equal(t, int64(2), audits)
}

func TestSubmitRecoversJobFromApplicant(t *testing.T) {
	r := newRouter()
	applicant, err := database.CreateTestApplicant(testDB, model.ApplicantStatusNew, true)
	require.NoError(t, err)

	rec, resp := testutil.MakeJSONRequest(submitBody(applicant.ID, 3, model.DecisionNeutral), token(t, database.TestReviewer2), r, "/reviews", http.MethodPost)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var stored model.Review
	require.NoError(t, testDB.First(&stored, "id = ?", resp["review"].(map[string]any)["id"]).Error)
	assert.Equal(t, database.TestJob.ID, stored.JobID)
}

func TestSubmitErrors(t *testing.T) {
	r := newRouter()
	tok := token(t, database.TestReviewer1)
	withJob, err := database.CreateTestApplicant(testDB, model.ApplicantStatusNew, true)
	require.NoError(t, err)
	noJob, err := database.CreateTestApplicant(testDB, model.ApplicantStatusNew, false)
	require.NoError(t, err)

	tests := []struct {
		name   string
		body   any
		status int
		field  string
	}{
		{"unknown applicant", submitBody(uuid.New(), 4, model.DecisionRecommended), http.StatusNotFound, ""},
		{"applicant without job", submitBody(noJob.ID, 4, model.DecisionRecommended), http.StatusBadRequest, "jobId"},
		{"rating too high", submitBody(withJob.ID, 6, model.DecisionRecommended), http.StatusBadRequest, "rating"},
		{"rating too low", submitBody(withJob.ID, 0, model.DecisionRecommended), http.StatusBadRequest, "rating"},
		{"unknown decision", submitBody(withJob.ID, 4, "maybe"), http.StatusBadRequest, "decision"},
		{"body is not an object", "five stars", http.StatusBadRequest, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec, resp := testutil.MakeJSONRequest(tc.body, tok, r, "/reviews", http.MethodPost)
			assert.Equal(t, tc.status, rec.Code, rec.Body.String())
			if tc.field != "" {
				assert.Contains(t, resp["fields"], tc.field)
			}
		})
	}

	var count int64
	require.NoError(t, testDB.Model(&model.Review{}).Where("applicant_id IN ?", []uuid.UUID{withJob.ID, noJob.ID}).Count(&count).Error)
	assert.Zero(t, count)
	assert.Equal(t, model.ApplicantStatusNew, applicantStatus(t, withJob.ID))
}

func TestSubmitNamesWronglyTypedFields(t *testing.T) {
	r := newRouter()
	tok := token(t, database.TestReviewer1)
	applicant, err := database.CreateTestApplicant(testDB, model.ApplicantStatusNew, true)
	require.NoError(t, err)

	withField := func(key string, value any) map[string]any {
		body := submitBody(applicant.ID, 4, model.DecisionRecommended)
		body[key] = value
		return body
	}

	tests := []struct {
		name  string
		body  map[string]any
		field string
	}{
		{"rating as text", withField("rating", "five"), "rating"},
		{"fractional rating", withField("rating", 4.5), "rating"},
		{"malformed applicant id", withField("applicantId", "not-a-uuid"), "applicantId"},
		{"malformed job id", withField("jobId", "job-1"), "jobId"},
		{"pros not a list", withField("pros", "clear communicator"), "pros"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec, resp := testutil.MakeJSONRequest(tc.body, tok, r, "/reviews", http.MethodPost)
			require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
			assert.Equal(t, []any{tc.field}, resp["fields"])
		})
	}

	var count int64
	require.NoError(t, testDB.Model(&model.Review{}).Where("applicant_id = ?", applicant.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestSubmitNeverMovesStatusForOversightOrAdvanced(t *testing.T) {
	r := newRouter()

	fresh, err := database.CreateTestApplicant(testDB, model.ApplicantStatusNew, true)
	require.NoError(t, err)
	rec, resp := testutil.MakeJSONRequest(submitBody(fresh.ID, 5, model.DecisionStrongHire), token(t, database.TestAdmin), r, "/reviews", http.MethodPost)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, string(model.ApplicantStatusNew), resp["applicantStatus"])
	assert.Equal(t, model.ApplicantStatusNew, applicantStatus(t, fresh.ID))

	interviewing, err := database.CreateTestApplicant(testDB, model.ApplicantStatusInterviewing, true)
	require.NoError(t, err)
	rec, _ = testutil.MakeJSONRequest(submitBody(interviewing.ID, 1, model.DecisionStrongNo), token(t, database.TestReviewer3), r, "/reviews", http.MethodPost)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, model.ApplicantStatusInterviewing, applicantStatus(t, interviewing.ID))
}

func TestByApplicantHidesPrivateNotesAndOrphans(t *testing.T) {
	r := newRouter()
	applicant, err := database.CreateTestApplicant(testDB, model.ApplicantStatusNew, true)
	require.NoError(t, err)

	temp, err := database.CreateTestStaff(testDB, model.RoleReviewer)
	require.NoError(t, err)
	for _, u := range []model.User{database.TestReviewer1, database.TestReviewer2, temp} {
		rec, _ := testutil.MakeJSONRequest(submitBody(applicant.ID, 4, model.DecisionRecommended), token(t, u), r, "/reviews", http.MethodPost)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	}
	require.NoError(t, testDB.Delete(&model.User{}, "id = ?", temp.ID).Error)

	endpoint := fmt.Sprintf("/reviews/applicant/%s", applicant.ID)

	rec, resp := testutil.MakeJSONRequest(nil, token(t, database.TestReviewer1), r, endpoint, http.MethodGet)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	reviews := resp["reviews"].([]any)
	require.Len(t, reviews, 2)
	for _, raw := range reviews {
		rv := raw.(map[string]any)
		if rv["reviewerId"] == database.TestReviewer1.ID.String() {
			assert.Equal(t, "salary expectations are high", rv["privateNotes"])
		} else {
			assert.Nil(t, rv["privateNotes"])
		}
	}

	rec, resp = testutil.MakeJSONRequest(nil, token(t, database.TestSuperadmin), r, endpoint, http.MethodGet)
	require.Equal(t, http.StatusOK, rec.Code)
	for _, raw := range resp["reviews"].([]any) {
		assert.Equal(t, "salary expectations are high", raw.(map[string]any)["privateNotes"])
	}

	rec, resp = testutil.MakeJSONRequest(nil, token(t, database.TestReviewer1), r, "/reviews/average/"+applicant.ID.String(), http.MethodGet)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 2, resp["totalReviews"])
	assert.EqualValues(t, 4, resp["averageRating"])

	rec, _ = testutil.MakeJSONRequest(nil, token(t, database.TestReviewer1), r, "/reviews/applicant/"+uuid.NewString(), http.MethodGet)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, resp = testutil.MakeJSONRequest(nil, token(t, database.TestReviewer1), r, "/reviews/applicant/not-a-uuid", http.MethodGet)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid applicantId", resp["error"])
}

func TestMine(t *testing.T) {
	r := newRouter()
	applicant, err := database.CreateTestApplicant(testDB, model.ApplicantStatusNew, true)
	require.NoError(t, err)
	tok := token(t, database.TestReviewer2)
	endpoint := "/reviews/mine/" + applicant.ID.String()

	rec, resp := testutil.MakeJSONRequest(nil, tok, r, endpoint, http.MethodGet)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, resp, "review")
	assert.Nil(t, resp["review"])

	rec, _ = testutil.MakeJSONRequest(submitBody(applicant.ID, 5, model.DecisionStrongHire), tok, r, "/reviews", http.MethodPost)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, resp = testutil.MakeJSONRequest(nil, tok, r, endpoint, http.MethodGet)
	require.Equal(t, http.StatusOK, rec.Code)
	mine := resp["review"].(map[string]any)
	assert.EqualValues(t, 5, mine["rating"])
	assert.Equal(t, "salary expectations are high", mine["privateNotes"])
}

func TestBatchBadges(t *testing.T) {
	r := newRouter()
	tok := token(t, database.TestReviewer1)
	reviewed, err := database.CreateTestApplicant(testDB, model.ApplicantStatusNew, true)
	require.NoError(t, err)
	untouched, err := database.CreateTestApplicant(testDB, model.ApplicantStatusNew, true)
	require.NoError(t, err)

	rec, _ := testutil.MakeJSONRequest(submitBody(reviewed.ID, 3, model.DecisionNeutral), tok, r, "/reviews", http.MethodPost)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, resp := testutil.MakeJSONRequest(map[string]any{"applicantIds": []uuid.UUID{reviewed.ID, untouched.ID}}, tok, r, "/reviews/batch-badges", http.MethodPost)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	byApplicant := resp["reviewsByApplicant"].(map[string]any)
	require.Len(t, byApplicant[reviewed.ID.String()], 1)
	badge := byApplicant[reviewed.ID.String()].([]any)[0].(map[string]any)
	assert.Equal(t, database.TestReviewer1.Name, badge["reviewerName"])
	assert.Empty(t, byApplicant[untouched.ID.String()])
	assert.Contains(t, byApplicant, untouched.ID.String())

	rec, _ = testutil.MakeJSONRequest(map[string]any{"applicantIds": []uuid.UUID{}}, tok, r, "/reviews/batch-badges", http.MethodPost)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRatingDistribution(t *testing.T) {
	r := newRouter()
	reviewer, err := database.CreateTestStaff(testDB, model.RoleReviewer)
	require.NoError(t, err)
	tok := token(t, reviewer)

	for _, rating := range []int{5, 5, 2} {
		applicant, err := database.CreateTestApplicant(testDB, model.ApplicantStatusNew, true)
		require.NoError(t, err)
		rec, _ := testutil.MakeJSONRequest(submitBody(applicant.ID, rating, model.DecisionNeutral), tok, r, "/reviews", http.MethodPost)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec, resp := testutil.MakeJSONRequest(nil, tok, r, "/reviews/rating-distribution", http.MethodGet)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.EqualValues(t, 3, resp["total"])
	dist := resp["distribution"].([]any)
	require.Len(t, dist, 5)
	assert.EqualValues(t, 2, dist[4].(map[string]any)["count"])
	assert.EqualValues(t, 0, dist[0].(map[string]any)["count"])

	rec, _ = testutil.MakeJSONRequest(nil, token(t, database.TestReviewer1), r, "/reviews/rating-distribution?reviewerId="+reviewer.ID.String(), http.MethodGet)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, resp = testutil.MakeJSONRequest(nil, token(t, database.TestAdmin), r, "/reviews/rating-distribution?reviewerId="+reviewer.ID.String(), http.MethodGet)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 3, resp["total"])

	rec, _ = testutil.MakeJSONRequest(nil, tok, r, "/reviews/rating-distribution?reviewerId=nope", http.MethodGet)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
