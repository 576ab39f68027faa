// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"github.com/33cn/rps/types"
	"github.com/spf13/cobra"
)

//AccountCmd 执行器账户
func AccountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Deposit, withdraw and query rps exec account",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		DepositCmd(),
		WithdrawCmd(),
		BalanceCmd(),
	)
	return cmd
}

//DepositCmd 充值
func DepositCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deposit",
		Short: "Deposit coins into rps exec account",
		Run:   deposit,
	}
	addAmountFlags(cmd)
	return cmd
}

func addAmountFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("from", "f", "", "account address")
	cmd.MarkFlagRequired("from")

	cmd.Flags().StringP("amount", "a", "", "amount in coins, at most 8 decimal places")
	cmd.MarkFlagRequired("amount")
}

func deposit(cmd *cobra.Command, args []string) {
	from, _ := cmd.Flags().GetString("from")
	amount, _ := cmd.Flags().GetString("amount")

	ctx := NewLocalCtx(cmd, func(env *Env) (interface{}, error) {
		value, err := ParseCoins(amount)
		if err != nil {
			return nil, err
		}
		receipt, err := env.Rps.Deposit(from, value)
		if err != nil {
			return nil, err
		}
		return receiptResult(receipt, env.Drain())
	})
	ctx.Run()
}

//WithdrawCmd 取出
func WithdrawCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdraw",
		Short: "Withdraw free coins from rps exec account",
		Run:   withdraw,
	}
	addAmountFlags(cmd)
	return cmd
}

func withdraw(cmd *cobra.Command, args []string) {
	from, _ := cmd.Flags().GetString("from")
	amount, _ := cmd.Flags().GetString("amount")

	ctx := NewLocalCtx(cmd, func(env *Env) (interface{}, error) {
		value, err := ParseCoins(amount)
		if err != nil {
			return nil, err
		}
		receipt, err := env.Rps.Withdraw(from, value)
		if err != nil {
			return nil, err
		}
		return receiptResult(receipt, env.Drain())
	})
	ctx.Run()
}

//BalanceCmd 余额
func BalanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Get balance of a account address in rps exec account",
		Run:   balance,
	}
	addBalanceFlags(cmd)
	return cmd
}

func addBalanceFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("addr", "a", "", "account addr")
	cmd.MarkFlagRequired("addr")
}

func balance(cmd *cobra.Command, args []string) {
	addr, _ := cmd.Flags().GetString("addr")

	ctx := NewLocalCtx(cmd, func(env *Env) (interface{}, error) {
		return env.Rps.QueryBalance(addr)
	})
	ctx.SetResultCb(parseBalanceRes)
	ctx.Run()
}

func parseBalanceRes(arg interface{}) (interface{}, error) {
	acc := arg.(*types.Account)
	return accountResult(acc), nil
}
