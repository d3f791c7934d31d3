// Package equity projects the value of an equity grant over the years.
//
// Given a share price growth assumption, redemption rates and a cumulative
// vesting schedule, Project computes a Ledger: for every year, and for two
// instrument tracks (options/A-shares and common shares), the shares redeemed,
// the redemption proceeds, the value of the shares still held, and the combined
// total.
//
// The projection is a deterministic forward formula, not a pricing model:
//   - the share price compounds from the epoch year at the growth rate;
//   - nothing is redeemed the first year after the epoch;
//   - each following year redeems a fraction of the previous year's redeemable
//     shares (vested unsold options, unsold common shares);
//   - shares are valued at the price gap over their reference price (strike
//     price for options, purchase price for common shares), never below zero.
//
// All quantities are exact decimals: fractional shares are carried through,
// and nothing is rounded until a renderer formats it.
//
// Project is pure and safe for concurrent use. Parameters are checked at the
// boundary with Params.Validate, or built from a Scenario file. Sweep and
// BuildChart re-run the projection along one parameter to compare variants.
//
// This package serves as the foundational logic for the `eqv` command-line
// tool and its HTTP server.
package equity
