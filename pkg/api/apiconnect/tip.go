package apiconnect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/tippool/pkg/api"
)

const (
	TipServiceCalculateDistributionProcedure = "/tippool.v1.TipService/CalculateDistribution"
	TipServiceSaveShiftProcedure             = "/tippool.v1.TipService/SaveShift"
	TipServiceGetShiftProcedure              = "/tippool.v1.TipService/GetShift"
	TipServiceListShiftsProcedure            = "/tippool.v1.TipService/ListShifts"
	TipServiceUpdateShiftProcedure           = "/tippool.v1.TipService/UpdateShift"
	TipServiceDeleteShiftProcedure           = "/tippool.v1.TipService/DeleteShift"
	TipServiceGetShiftDistributionProcedure  = "/tippool.v1.TipService/GetShiftDistribution"
	TipServiceGetWeeklyBreakdownProcedure    = "/tippool.v1.TipService/GetWeeklyBreakdown"
	TipServiceGetWeekGridProcedure           = "/tippool.v1.TipService/GetWeekGrid"
	TipServiceParseScheduleProcedure         = "/tippool.v1.TipService/ParseSchedule"
	TipServiceImportScheduleProcedure        = "/tippool.v1.TipService/ImportSchedule"
	TipServiceExportWeeklySummaryProcedure   = "/tippool.v1.TipService/ExportWeeklySummary"
)

// TipServiceHandler is implemented by the shift and payout service.
type TipServiceHandler interface {
	CalculateDistribution(context.Context, *connect.Request[api.CalculateDistributionRequest]) (*connect.Response[api.CalculateDistributionResponse], error)
	SaveShift(context.Context, *connect.Request[api.SaveShiftRequest]) (*connect.Response[api.SaveShiftResponse], error)
	GetShift(context.Context, *connect.Request[api.GetShiftRequest]) (*connect.Response[api.GetShiftResponse], error)
	ListShifts(context.Context, *connect.Request[api.ListShiftsRequest]) (*connect.Response[api.ListShiftsResponse], error)
	UpdateShift(context.Context, *connect.Request[api.UpdateShiftRequest]) (*connect.Response[api.UpdateShiftResponse], error)
	DeleteShift(context.Context, *connect.Request[api.DeleteShiftRequest]) (*connect.Response[api.DeleteShiftResponse], error)
	GetShiftDistribution(context.Context, *connect.Request[api.GetShiftDistributionRequest]) (*connect.Response[api.GetShiftDistributionResponse], error)
	GetWeeklyBreakdown(context.Context, *connect.Request[api.GetWeeklyBreakdownRequest]) (*connect.Response[api.GetWeeklyBreakdownResponse], error)
	GetWeekGrid(context.Context, *connect.Request[api.GetWeekGridRequest]) (*connect.Response[api.GetWeekGridResponse], error)
	ParseSchedule(context.Context, *connect.Request[api.ParseScheduleRequest]) (*connect.Response[api.ParseScheduleResponse], error)
	ImportSchedule(context.Context, *connect.Request[api.ImportScheduleRequest]) (*connect.Response[api.ImportScheduleResponse], error)
	ExportWeeklySummary(context.Context, *connect.Request[api.ExportWeeklySummaryRequest]) (*connect.Response[api.ExportWeeklySummaryResponse], error)
}

// NewTipServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewTipServiceHandler(svc TipServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{WithJSON()}, opts...)
	return "/" + TipServiceName + "/", serviceMux(map[string]*connect.Handler{
		TipServiceCalculateDistributionProcedure: connect.NewUnaryHandler(TipServiceCalculateDistributionProcedure, svc.CalculateDistribution, opts...),
		TipServiceSaveShiftProcedure:             connect.NewUnaryHandler(TipServiceSaveShiftProcedure, svc.SaveShift, opts...),
		TipServiceGetShiftProcedure:              connect.NewUnaryHandler(TipServiceGetShiftProcedure, svc.GetShift, opts...),
		TipServiceListShiftsProcedure:            connect.NewUnaryHandler(TipServiceListShiftsProcedure, svc.ListShifts, opts...),
		TipServiceUpdateShiftProcedure:           connect.NewUnaryHandler(TipServiceUpdateShiftProcedure, svc.UpdateShift, opts...),
		TipServiceDeleteShiftProcedure:           connect.NewUnaryHandler(TipServiceDeleteShiftProcedure, svc.DeleteShift, opts...),
		TipServiceGetShiftDistributionProcedure:  connect.NewUnaryHandler(TipServiceGetShiftDistributionProcedure, svc.GetShiftDistribution, opts...),
		TipServiceGetWeeklyBreakdownProcedure:    connect.NewUnaryHandler(TipServiceGetWeeklyBreakdownProcedure, svc.GetWeeklyBreakdown, opts...),
		TipServiceGetWeekGridProcedure:           connect.NewUnaryHandler(TipServiceGetWeekGridProcedure, svc.GetWeekGrid, opts...),
		TipServiceParseScheduleProcedure:         connect.NewUnaryHandler(TipServiceParseScheduleProcedure, svc.ParseSchedule, opts...),
		TipServiceImportScheduleProcedure:        connect.NewUnaryHandler(TipServiceImportScheduleProcedure, svc.ImportSchedule, opts...),
		TipServiceExportWeeklySummaryProcedure:   connect.NewUnaryHandler(TipServiceExportWeeklySummaryProcedure, svc.ExportWeeklySummary, opts...),
	})
}

// TipServiceClient is a client for the tippool.v1.TipService service.
type TipServiceClient interface {
	CalculateDistribution(context.Context, *connect.Request[api.CalculateDistributionRequest]) (*connect.Response[api.CalculateDistributionResponse], error)
	SaveShift(context.Context, *connect.Request[api.SaveShiftRequest]) (*connect.Response[api.SaveShiftResponse], error)
	GetShift(context.Context, *connect.Request[api.GetShiftRequest]) (*connect.Response[api.GetShiftResponse], error)
	ListShifts(context.Context, *connect.Request[api.ListShiftsRequest]) (*connect.Response[api.ListShiftsResponse], error)
	UpdateShift(context.Context, *connect.Request[api.UpdateShiftRequest]) (*connect.Response[api.UpdateShiftResponse], error)
	DeleteShift(context.Context, *connect.Request[api.DeleteShiftRequest]) (*connect.Response[api.DeleteShiftResponse], error)
	GetShiftDistribution(context.Context, *connect.Request[api.GetShiftDistributionRequest]) (*connect.Response[api.GetShiftDistributionResponse], error)
	GetWeeklyBreakdown(context.Context, *connect.Request[api.GetWeeklyBreakdownRequest]) (*connect.Response[api.GetWeeklyBreakdownResponse], error)
	GetWeekGrid(context.Context, *connect.Request[api.GetWeekGridRequest]) (*connect.Response[api.GetWeekGridResponse], error)
	ParseSchedule(context.Context, *connect.Request[api.ParseScheduleRequest]) (*connect.Response[api.ParseScheduleResponse], error)
	ImportSchedule(context.Context, *connect.Request[api.ImportScheduleRequest]) (*connect.Response[api.ImportScheduleResponse], error)
	ExportWeeklySummary(context.Context, *connect.Request[api.ExportWeeklySummaryRequest]) (*connect.Response[api.ExportWeeklySummaryResponse], error)
}

// NewTipServiceClient constructs a client for the TipService at baseURL.
func NewTipServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) TipServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{WithJSON()}, opts...)
	return &tipServiceClient{
		calculateDistribution: connect.NewClient[api.CalculateDistributionRequest, api.CalculateDistributionResponse](httpClient, baseURL+TipServiceCalculateDistributionProcedure, opts...),
		saveShift:             connect.NewClient[api.SaveShiftRequest, api.SaveShiftResponse](httpClient, baseURL+TipServiceSaveShiftProcedure, opts...),
		getShift:              connect.NewClient[api.GetShiftRequest, api.GetShiftResponse](httpClient, baseURL+TipServiceGetShiftProcedure, opts...),
		listShifts:            connect.NewClient[api.ListShiftsRequest, api.ListShiftsResponse](httpClient, baseURL+TipServiceListShiftsProcedure, opts...),
		updateShift:           connect.NewClient[api.UpdateShiftRequest, api.UpdateShiftResponse](httpClient, baseURL+TipServiceUpdateShiftProcedure, opts...),
		deleteShift:           connect.NewClient[api.DeleteShiftRequest, api.DeleteShiftResponse](httpClient, baseURL+TipServiceDeleteShiftProcedure, opts...),
		getShiftDistribution:  connect.NewClient[api.GetShiftDistributionRequest, api.GetShiftDistributionResponse](httpClient, baseURL+TipServiceGetShiftDistributionProcedure, opts...),
		getWeeklyBreakdown:    connect.NewClient[api.GetWeeklyBreakdownRequest, api.GetWeeklyBreakdownResponse](httpClient, baseURL+TipServiceGetWeeklyBreakdownProcedure, opts...),
		getWeekGrid:           connect.NewClient[api.GetWeekGridRequest, api.GetWeekGridResponse](httpClient, baseURL+TipServiceGetWeekGridProcedure, opts...),
		parseSchedule:         connect.NewClient[api.ParseScheduleRequest, api.ParseScheduleResponse](httpClient, baseURL+TipServiceParseScheduleProcedure, opts...),
		importSchedule:        connect.NewClient[api.ImportScheduleRequest, api.ImportScheduleResponse](httpClient, baseURL+TipServiceImportScheduleProcedure, opts...),
		exportWeeklySummary:   connect.NewClient[api.ExportWeeklySummaryRequest, api.ExportWeeklySummaryResponse](httpClient, baseURL+TipServiceExportWeeklySummaryProcedure, opts...),
	}
}

type tipServiceClient struct {
	calculateDistribution *connect.Client[api.CalculateDistributionRequest, api.CalculateDistributionResponse]
	saveShift             *connect.Client[api.SaveShiftRequest, api.SaveShiftResponse]
	getShift              *connect.Client[api.GetShiftRequest, api.GetShiftResponse]
	listShifts            *connect.Client[api.ListShiftsRequest, api.ListShiftsResponse]
	updateShift           *connect.Client[api.UpdateShiftRequest, api.UpdateShiftResponse]
	deleteShift           *connect.Client[api.DeleteShiftRequest, api.DeleteShiftResponse]
	getShiftDistribution  *connect.Client[api.GetShiftDistributionRequest, api.GetShiftDistributionResponse]
	getWeeklyBreakdown    *connect.Client[api.GetWeeklyBreakdownRequest, api.GetWeeklyBreakdownResponse]
	getWeekGrid           *connect.Client[api.GetWeekGridRequest, api.GetWeekGridResponse]
	parseSchedule         *connect.Client[api.ParseScheduleRequest, api.ParseScheduleResponse]
	importSchedule        *connect.Client[api.ImportScheduleRequest, api.ImportScheduleResponse]
	exportWeeklySummary   *connect.Client[api.ExportWeeklySummaryRequest, api.ExportWeeklySummaryResponse]
}

func (c *tipServiceClient) CalculateDistribution(ctx context.Context, req *connect.Request[api.CalculateDistributionRequest]) (*connect.Response[api.CalculateDistributionResponse], error) {
	return c.calculateDistribution.CallUnary(ctx, req)
}

func (c *tipServiceClient) SaveShift(ctx context.Context, req *connect.Request[api.SaveShiftRequest]) (*connect.Response[api.SaveShiftResponse], error) {
	return c.saveShift.CallUnary(ctx, req)
}

func (c *tipServiceClient) GetShift(ctx context.Context, req *connect.Request[api.GetShiftRequest]) (*connect.Response[api.GetShiftResponse], error) {
	return c.getShift.CallUnary(ctx, req)
}

func (c *tipServiceClient) ListShifts(ctx context.Context, req *connect.Request[api.ListShiftsRequest]) (*connect.Response[api.ListShiftsResponse], error) {
	return c.listShifts.CallUnary(ctx, req)
}

func (c *tipServiceClient) UpdateShift(ctx context.Context, req *connect.Request[api.UpdateShiftRequest]) (*connect.Response[api.UpdateShiftResponse], error) {
	return c.updateShift.CallUnary(ctx, req)
}

func (c *tipServiceClient) DeleteShift(ctx context.Context, req *connect.Request[api.DeleteShiftRequest]) (*connect.Response[api.DeleteShiftResponse], error) {
	return c.deleteShift.CallUnary(ctx, req)
}

func (c *tipServiceClient) GetShiftDistribution(ctx context.Context, req *connect.Request[api.GetShiftDistributionRequest]) (*connect.Response[api.GetShiftDistributionResponse], error) {
	return c.getShiftDistribution.CallUnary(ctx, req)
}

func (c *tipServiceClient) GetWeeklyBreakdown(ctx context.Context, req *connect.Request[api.GetWeeklyBreakdownRequest]) (*connect.Response[api.GetWeeklyBreakdownResponse], error) {
	return c.getWeeklyBreakdown.CallUnary(ctx, req)
}

func (c *tipServiceClient) GetWeekGrid(ctx context.Context, req *connect.Request[api.GetWeekGridRequest]) (*connect.Response[api.GetWeekGridResponse], error) {
	return c.getWeekGrid.CallUnary(ctx, req)
}

func (c *tipServiceClient) ParseSchedule(ctx context.Context, req *connect.Request[api.ParseScheduleRequest]) (*connect.Response[api.ParseScheduleResponse], error) {
	return c.parseSchedule.CallUnary(ctx, req)
}

func (c *tipServiceClient) ImportSchedule(ctx context.Context, req *connect.Request[api.ImportScheduleRequest]) (*connect.Response[api.ImportScheduleResponse], error) {
	return c.importSchedule.CallUnary(ctx, req)
}

func (c *tipServiceClient) ExportWeeklySummary(ctx context.Context, req *connect.Request[api.ExportWeeklySummaryRequest]) (*connect.Response[api.ExportWeeklySummaryResponse], error) {
	return c.exportWeeklySummary.CallUnary(ctx, req)
}

// UnimplementedTipServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedTipServiceHandler struct{}

func (UnimplementedTipServiceHandler) CalculateDistribution(context.Context, *connect.Request[api.CalculateDistributionRequest]) (*connect.Response[api.CalculateDistributionResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tippool.v1.TipService.CalculateDistribution is not implemented"))
}

func (UnimplementedTipServiceHandler) SaveShift(context.Context, *connect.Request[api.SaveShiftRequest]) (*connect.Response[api.SaveShiftResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tippool.v1.TipService.SaveShift is not implemented"))
}

func (UnimplementedTipServiceHandler) GetShift(context.Context, *connect.Request[api.GetShiftRequest]) (*connect.Response[api.GetShiftResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tippool.v1.TipService.GetShift is not implemented"))
}

func (UnimplementedTipServiceHandler) ListShifts(context.Context, *connect.Request[api.ListShiftsRequest]) (*connect.Response[api.ListShiftsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tippool.v1.TipService.ListShifts is not implemented"))
}

func (UnimplementedTipServiceHandler) UpdateShift(context.Context, *connect.Request[api.UpdateShiftRequest]) (*connect.Response[api.UpdateShiftResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tippool.v1.TipService.UpdateShift is not implemented"))
}

func (UnimplementedTipServiceHandler) DeleteShift(context.Context, *connect.Request[api.DeleteShiftRequest]) (*connect.Response[api.DeleteShiftResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tippool.v1.TipService.DeleteShift is not implemented"))
}

func (UnimplementedTipServiceHandler) GetShiftDistribution(context.Context, *connect.Request[api.GetShiftDistributionRequest]) (*connect.Response[api.GetShiftDistributionResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tippool.v1.TipService.GetShiftDistribution is not implemented"))
}

func (UnimplementedTipServiceHandler) GetWeeklyBreakdown(context.Context, *connect.Request[api.GetWeeklyBreakdownRequest]) (*connect.Response[api.GetWeeklyBreakdownResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tippool.v1.TipService.GetWeeklyBreakdown is not implemented"))
}

func (UnimplementedTipServiceHandler) GetWeekGrid(context.Context, *connect.Request[api.GetWeekGridRequest]) (*connect.Response[api.GetWeekGridResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tippool.v1.TipService.GetWeekGrid is not implemented"))
}

func (UnimplementedTipServiceHandler) ParseSchedule(context.Context, *connect.Request[api.ParseScheduleRequest]) (*connect.Response[api.ParseScheduleResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tippool.v1.TipService.ParseSchedule is not implemented"))
}

func (UnimplementedTipServiceHandler) ImportSchedule(context.Context, *connect.Request[api.ImportScheduleRequest]) (*connect.Response[api.ImportScheduleResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tippool.v1.TipService.ImportSchedule is not implemented"))
}

func (UnimplementedTipServiceHandler) ExportWeeklySummary(context.Context, *connect.Request[api.ExportWeeklySummaryRequest]) (*connect.Response[api.ExportWeeklySummaryResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tippool.v1.TipService.ExportWeeklySummary is not implemented"))
}
