package components

import (
	"vehicle-rental/internal/domain/booking"
	"vehicle-rental/internal/domain/payment"
	"vehicle-rental/internal/infra/receipt"
	"vehicle-rental/internal/pkg/clock"
	"vehicle-rental/internal/usecase/commands"
	"vehicle-rental/internal/usecase/queries"

	"go.uber.org/fx"
)

const receiptCompanyName = "Vehicle Rental"

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	paymentStrategiesOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		booking.NewDailyRateCostCalculator,
		fx.As(new(booking.CostCalculator)),
	),
	booking.NewFactory,
	fx.Annotate(
		func() *receipt.PDFRenderer {
			return receipt.NewPDFRenderer(receiptCompanyName)
		},
		fx.As(new(queries.ReceiptRenderer)),
	),
)

// New payment methods only need another strategy in the group.
var paymentStrategiesOption = fx.Provide(
	fx.Annotate(
		payment.NewCardStrategy,
		fx.As(new(payment.Strategy)),
		fx.ResultTags(`group:"payment_strategies"`),
	),
	fx.Annotate(
		payment.NewCashStrategy,
		fx.As(new(payment.Strategy)),
		fx.ResultTags(`group:"payment_strategies"`),
	),
	fx.Annotate(
		payment.NewRegistry,
		fx.ParamTags(`group:"payment_strategies"`),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingUseCase,
		commands.NewPaymentUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
	),
)
