package delivery

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
	"golang.org/x/xerrors"

	"github.com/x-xyz/airdropper/domain"
)

type deliverySuite struct {
	suite.Suite
}

func TestDeliverySuite(t *testing.T) {
	suite.Run(t, new(deliverySuite))
}

func (s *deliverySuite) TestStatusOf() {
	type req struct {
		Amounts string `validate:"required"`
	}
	vErr := validator.New().Struct(&req{})

	tests := []struct {
		desc    string
		err     error
		expCode int
	}{
		{desc: "not found", err: domain.ErrNotFound, expCode: http.StatusNotFound},
		{desc: "wrapped bad request", err: xerrors.Errorf("recipient 1: %w", domain.ErrInvalidAddress), expCode: http.StatusBadRequest},
		{desc: "validation", err: vErr, expCode: http.StatusBadRequest},
		{desc: "unknown", err: errors.New("boom"), expCode: http.StatusInternalServerError},
	}
	for _, t := range tests {
		s.Equal(t.expCode, StatusOf(t.err), t.desc)
	}
}

func (s *deliverySuite) TestMakeJsonResp() {
	tests := []struct {
		desc      string
		status    int
		data      interface{}
		expCode   int
		expStatus JsonResponseStatus
		expData   string
	}{
		{desc: "success", status: http.StatusOK, data: map[string]int{"total": 600}, expCode: http.StatusOK, expStatus: JsonResponseStatusSuccess, expData: `{"total":600}`},
		{desc: "fail message", status: http.StatusBadRequest, data: "invalid params", expCode: http.StatusBadRequest, expStatus: JsonResponseStatusFail, expData: `"invalid params"`},
		{desc: "known error overrides status", status: http.StatusInternalServerError, data: domain.ErrNotFound, expCode: http.StatusNotFound, expStatus: JsonResponseStatusFail, expData: `"` + domain.ErrNotFound.Error() + `"`},
		{desc: "unknown error keeps status", status: http.StatusBadGateway, data: errors.New("boom"), expCode: http.StatusBadGateway, expStatus: JsonResponseStatusFail, expData: `"boom"`},
	}
	for _, t := range tests {
		rec := httptest.NewRecorder()
		c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
		s.NoError(MakeJsonResp(c, t.status, t.data), t.desc)
		s.Equal(t.expCode, rec.Code, t.desc)

		res := struct {
			Data   json.RawMessage    `json:"data"`
			Status JsonResponseStatus `json:"status"`
		}{}
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &res))
		s.Equal(t.expStatus, res.Status, t.desc)
		s.JSONEq(t.expData, string(res.Data), t.desc)
	}
}
