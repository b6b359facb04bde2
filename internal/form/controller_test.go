package form

import (
	"context"
	"testing"
	"time"

	"github.com/Alias1177/heartform/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestControllerMountOnce(t *testing.T) {
	f := NewHeartForm()
	c := NewController(f, &fakeClient{}, Options{Origin: backendOrigin})

	require.NoError(t, c.Mount())
	defer c.Unmount()

	assert.ErrorIs(t, c.Mount(), ErrAlreadyMounted)
	// one submit listener plus one listener per numeric input
	assert.Equal(t, len(models.FieldNames)+1, f.listenerCount())
}

func TestControllerWiresHandlers(t *testing.T) {
	f := NewHeartForm()
	client := &fakeClient{outcome: models.Prediction{Prediction: 1, Probability: 0.85, Message: "High risk"}}
	c := NewController(f, client, Options{Origin: backendOrigin, ClearDelay: time.Hour})
	require.NoError(t, c.Mount())
	defer c.Unmount()

	require.NoError(t, f.SetValue("age", "121"))
	assert.True(t, invalid(f, "age"))

	for name, value := range sampleValues {
		require.NoError(t, f.SetValue(name, value))
	}
	assert.False(t, invalid(f, "age"))

	f.Submit(context.Background())
	assert.Equal(t, 1, client.Calls())
	assert.Equal(t, ClassDanger, f.Result().Class)
	assert.Contains(t, f.Result().Text(), "85.0%")
}

func TestControllerSubmitIgnoresMarkers(t *testing.T) {
	f := NewHeartForm()
	client := &fakeClient{outcome: models.Prediction{Prediction: 0, Probability: 0.1, Message: "Low risk"}}
	c := NewController(f, client, Options{Origin: backendOrigin, ClearDelay: time.Hour})
	require.NoError(t, c.Mount())
	defer c.Unmount()

	require.NoError(t, f.SetValue("age", "500"))
	require.True(t, invalid(f, "age"))

	f.Submit(context.Background())
	require.Equal(t, 1, client.Calls())
	age, _ := client.payload.Get("age")
	assert.Equal(t, 500.0, age)
}

func TestControllerUnmount(t *testing.T) {
	f := NewHeartForm()
	client := &fakeClient{outcome: models.Prediction{}}
	c := NewController(f, client, Options{Origin: backendOrigin, ClearDelay: time.Hour})
	require.NoError(t, c.Mount())

	require.NoError(t, f.SetValue("chol", "1"))
	require.True(t, c.Validator().Pending("chol"))

	c.Unmount()
	c.Unmount()

	assert.Equal(t, 0, f.listenerCount())
	assert.False(t, c.Validator().Pending("chol"))

	require.NoError(t, f.SetValue("age", "0"))
	assert.False(t, invalid(f, "age"))
	f.Submit(context.Background())
	assert.Equal(t, 0, client.Calls())

	require.NoError(t, c.Mount(), "a controller can be mounted again after unmount")
	c.Unmount()
}
