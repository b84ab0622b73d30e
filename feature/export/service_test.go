package export

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"nbcli/core/apperr"
	"nbcli/core/render"
	"nbcli/core/storage"
	"nbcli/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func sampleTable() *render.Table {
	table := render.NewTable(
		render.Column{Header: "NAME", Width: 10},
		render.Column{Header: "ASSET TAG", Width: 10},
		render.Column{Header: "IP-ADDRESS", Width: 10},
	)
	table.AddRow("sw01", "A-1", "10.0.0.1/24")
	table.AddRow("sw02, core", "", nil)
	return table
}

func TestParseFormat(t *testing.T) {
	for raw, want := range map[string]Format{"csv": FormatCSV, " JSON ": FormatJSON, "yaml": FormatYAML, "yml": FormatYAML} {
		got, err := ParseFormat(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got)
	}

	_, err := ParseFormat("xml")
	assert.ErrorIs(t, err, apperr.ErrUserInput)
}

func TestFieldName(t *testing.T) {
	assert.Equal(t, "asset_tag", FieldName("ASSET TAG"))
	assert.Equal(t, "ip_address", FieldName("IP-ADDRESS"))
	assert.Equal(t, "name", FieldName(" NAME "))
}

func TestEncode_CSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, FormatCSV, sampleTable()))

	assert.Equal(t, "NAME,ASSET TAG,IP-ADDRESS\nsw01,A-1,10.0.0.1/24\n\"sw02, core\",,\n", buf.String())
}

func TestEncode_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, FormatJSON, sampleTable()))

	assert.JSONEq(t, `[
		{"name":"sw01","asset_tag":"A-1","ip_address":"10.0.0.1/24"},
		{"name":"sw02, core","asset_tag":"","ip_address":""}
	]`, buf.String())
}

func TestEncode_JSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, FormatJSON, render.NewTable(render.Column{Header: "NAME"})))
	assert.JSONEq(t, `[]`, buf.String())
}

func TestEncode_YAMLKeepsColumnOrder(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, FormatYAML, sampleTable()))

	want := "- name: sw01\n" +
		"  asset_tag: A-1\n" +
		"  ip_address: 10.0.0.1/24\n" +
		"- name: sw02, core\n" +
		"  asset_tag: \"\"\n" +
		"  ip_address: \"\"\n"
	assert.Equal(t, want, buf.String())
}

func TestEncode_UnknownFormat(t *testing.T) {
	err := Encode(&bytes.Buffer{}, Format("xml"), sampleTable())
	assert.ErrorIs(t, err, apperr.ErrUserInput)
}

func TestObjectName(t *testing.T) {
	at := time.Date(2024, 3, 9, 14, 5, 7, 0, time.FixedZone("CET", 3600))
	assert.Equal(t, "exports/device/20240309T130507Z.csv", ObjectName("device", FormatCSV, at))
}

func newTestService(client storage.Client) *Service {
	svc := NewService(client, storage.Config{Bucket: "nbcli-exports", Region: "us-east-1"}, nil)
	svc.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }
	return svc
}

func TestService_Upload(t *testing.T) {
	ctx := context.Background()
	client := new(mocks.Client)
	client.On("BucketExists", ctx, "nbcli-exports").Return(false, nil)
	client.On("MakeBucket", ctx, "nbcli-exports", minio.MakeBucketOptions{Region: "us-east-1"}).Return(nil)
	client.On("PutObject", ctx, "nbcli-exports", "exports/ip/20240102T030405Z.json", mock.Anything, mock.AnythingOfType("int64"),
		minio.PutObjectOptions{ContentType: "application/json"}).
		Return(minio.UploadInfo{Size: 120}, nil)

	name, err := newTestService(client).Upload(ctx, "ip", FormatJSON, sampleTable())
	require.NoError(t, err)
	assert.Equal(t, "exports/ip/20240102T030405Z.json", name)
	client.AssertExpectations(t)
}

func TestService_UploadPutFails(t *testing.T) {
	ctx := context.Background()
	client := new(mocks.Client)
	client.On("BucketExists", ctx, "nbcli-exports").Return(true, nil)
	client.On("PutObject", ctx, "nbcli-exports", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, errors.New("access denied"))

	_, err := newTestService(client).Upload(ctx, "device", FormatCSV, sampleTable())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "access denied")
	client.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_UploadBucketCheckFails(t *testing.T) {
	ctx := context.Background()
	client := new(mocks.Client)
	client.On("BucketExists", ctx, "nbcli-exports").Return(false, errors.New("connection refused"))

	_, err := newTestService(client).Upload(ctx, "device", FormatCSV, sampleTable())
	require.Error(t, err)
	client.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_UploadWithoutClient(t *testing.T) {
	_, err := NewService(nil, storage.Config{}, nil).Upload(context.Background(), "device", FormatCSV, sampleTable())
	assert.Error(t, err)
}
