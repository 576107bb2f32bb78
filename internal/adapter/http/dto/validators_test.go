package dto

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
)

func TestValidIdentity(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"rrkah-fqaaa-aaaaa-aaaaq-cai", true},
		{"2vxsx-fae", true},
		{"owner_1.test", true},
		{"", false},
		{"-leading-dash", false},
		{"has space", false},
		{"<script>", false},
		{string(make([]byte, 200)), false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidIdentity(tt.in), "input %q", tt.in)
	}
}

func TestBinding_RegisterWillRequest(t *testing.T) {
	ok := RegisterWillRequest{Beneficiary: "heir-bbbb", HeartbeatInterval: 3600}
	assert.NoError(t, binding.Validator.ValidateStruct(&ok))

	bad := RegisterWillRequest{Beneficiary: "not valid!", HeartbeatInterval: 3600}
	assert.Error(t, binding.Validator.ValidateStruct(&bad))

	missing := RegisterWillRequest{Beneficiary: "heir-bbbb"}
	assert.Error(t, binding.Validator.ValidateStruct(&missing))
}

func TestBinding_DeriveKeyRequest(t *testing.T) {
	ok := DeriveKeyRequest{Owner: "owner-aaaa", TransportPublicKey: []byte{2, 1}}
	assert.NoError(t, binding.Validator.ValidateStruct(&ok))

	noKey := DeriveKeyRequest{Owner: "owner-aaaa"}
	assert.Error(t, binding.Validator.ValidateStruct(&noKey))
}

func TestTrimStruct_TrimsWhitespace(t *testing.T) {
	req := RegisterWillRequest{
		Beneficiary:   "  heir-bbbb  ",
		PayoutAddress: " tb1qpayout ",
	}
	TrimStruct(&req)

	assert.Equal(t, "heir-bbbb", req.Beneficiary)
	assert.Equal(t, "tb1qpayout", req.PayoutAddress)
}

func TestTrimStruct_HandlesPointerString(t *testing.T) {
	s := "  value  "
	v := struct{ P *string }{P: &s}
	TrimStruct(&v)
	assert.Equal(t, "value", *v.P)

	n := struct{ P *string }{}
	TrimStruct(&n)
	assert.Nil(t, n.P)
}

func TestTrimStruct_NonPointerIsNoOp(t *testing.T) {
	req := RegisterWillRequest{Beneficiary: "  x  "}
	TrimStruct(req)
	assert.Equal(t, "  x  ", req.Beneficiary)
}
