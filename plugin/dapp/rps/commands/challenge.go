// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	rt "github.com/33cn/rps/plugin/dapp/rps/types"
	"github.com/spf13/cobra"
)

//ChallengeCmd 挑战管理
func ChallengeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "challenge",
		Short: "Rock paper scissors challenge management",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		CreateCmd(),
		EnterCmd(),
		CommitCmd(),
		RevealCmd(),
		ShowCmd(),
		ListCmd(),
		CountCmd(),
	)
	return cmd
}

//CreateCmd 创建挑战
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new challenge",
		Run:   createChallenge,
	}
	addCreateFlags(cmd)
	return cmd
}

func addCreateFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("from", "f", "", "challenger address")
	cmd.MarkFlagRequired("from")

	cmd.Flags().StringP("stake", "s", "", "stake in coins")
	cmd.MarkFlagRequired("stake")
}

func createChallenge(cmd *cobra.Command, args []string) {
	from, _ := cmd.Flags().GetString("from")
	stake, _ := cmd.Flags().GetString("stake")

	ctx := NewLocalCtx(cmd, func(env *Env) (interface{}, error) {
		value, err := ParseCoins(stake)
		if err != nil {
			return nil, err
		}
		receipt, err := env.Rps.CreateChallenge(from, value)
		if err != nil {
			return nil, err
		}
		return receiptResult(receipt, env.Drain())
	})
	ctx.Run()
}

func addIDFlags(cmd *cobra.Command) {
	cmd.Flags().Uint64P("id", "i", 0, "challenge id")
	cmd.MarkFlagRequired("id")
}

//EnterCmd 加入挑战
func EnterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "enter",
		Short: "Enter an open challenge as rival",
		Run:   enterChallenge,
	}
	cmd.Flags().StringP("from", "f", "", "rival address")
	cmd.MarkFlagRequired("from")
	addIDFlags(cmd)
	return cmd
}

func enterChallenge(cmd *cobra.Command, args []string) {
	from, _ := cmd.Flags().GetString("from")
	id, _ := cmd.Flags().GetUint64("id")

	ctx := NewLocalCtx(cmd, func(env *Env) (interface{}, error) {
		receipt, err := env.Rps.EnterChallenge(from, rt.ChallengeID(id))
		if err != nil {
			return nil, err
		}
		return receiptResult(receipt, env.Drain())
	})
	ctx.Run()
}

//CommitCmd 冻结押注并提交出手的承诺
func CommitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "commit",
		Short: "Lock the stake and commit a hidden move",
		Run:   commitMove,
	}
	addCommitFlags(cmd)
	return cmd
}

func addCommitFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("from", "f", "", "player address")
	cmd.MarkFlagRequired("from")
	addIDFlags(cmd)

	cmd.Flags().StringP("move", "m", "", "rock, paper or scissors")
	cmd.MarkFlagRequired("move")

	cmd.Flags().Uint64P("secret", "k", 0, "secret number of the move")
	cmd.MarkFlagRequired("secret")
}

func commitMove(cmd *cobra.Command, args []string) {
	from, _ := cmd.Flags().GetString("from")
	id, _ := cmd.Flags().GetUint64("id")
	move, _ := cmd.Flags().GetString("move")
	secret, _ := cmd.Flags().GetUint64("secret")

	ctx := NewLocalCtx(cmd, func(env *Env) (interface{}, error) {
		m, err := rt.ParseMove(move)
		if err != nil {
			return nil, err
		}
		receipt, err := env.Rps.CommitMove(from, rt.ChallengeID(id), m, secret)
		if err != nil {
			return nil, err
		}
		return receiptResult(receipt, env.Drain())
	})
	ctx.Run()
}

//RevealCmd 公布双方的出手并结算
func RevealCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reveal",
		Short: "Reveal both moves and settle the stakes",
		Run:   revealAndSettle,
	}
	addRevealFlags(cmd)
	return cmd
}

func addRevealFlags(cmd *cobra.Command) {
	addCommitFlags(cmd)

	cmd.Flags().StringP("rival_move", "r", "", "move of the rival")
	cmd.MarkFlagRequired("rival_move")

	cmd.Flags().Uint64P("rival_secret", "x", 0, "secret number of the rival")
	cmd.MarkFlagRequired("rival_secret")
}

func revealAndSettle(cmd *cobra.Command, args []string) {
	from, _ := cmd.Flags().GetString("from")
	id, _ := cmd.Flags().GetUint64("id")
	move, _ := cmd.Flags().GetString("move")
	secret, _ := cmd.Flags().GetUint64("secret")
	rivalMove, _ := cmd.Flags().GetString("rival_move")
	rivalSecret, _ := cmd.Flags().GetUint64("rival_secret")

	ctx := NewLocalCtx(cmd, func(env *Env) (interface{}, error) {
		a, err := rt.ParseMove(move)
		if err != nil {
			return nil, err
		}
		b, err := rt.ParseMove(rivalMove)
		if err != nil {
			return nil, err
		}
		receipt, err := env.Rps.RevealAndSettle(from, a, secret, b, rivalSecret, rt.ChallengeID(id))
		if err != nil {
			return nil, err
		}
		return receiptResult(receipt, env.Drain())
	})
	ctx.Run()
}

//ShowCmd 查询挑战
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show challenges by id",
		Run:   showChallenge,
	}
	cmd.Flags().UintSliceP("id", "i", nil, "challenge ids")
	cmd.MarkFlagRequired("id")
	return cmd
}

func showChallenge(cmd *cobra.Command, args []string) {
	list, _ := cmd.Flags().GetUintSlice("id")

	ctx := NewLocalCtx(cmd, func(env *Env) (interface{}, error) {
		ids := make([]rt.ChallengeID, 0, len(list))
		for _, id := range list {
			ids = append(ids, rt.ChallengeID(id))
		}
		if len(ids) == 1 {
			record, err := env.Rps.QueryChallengeByID(ids[0])
			if err != nil {
				return nil, err
			}
			return &rt.ReplyChallengeList{Challenges: []*rt.ChallengeRecord{record}}, nil
		}
		return env.Rps.QueryChallengesByIDs(ids)
	})
	ctx.SetResultCb(parseChallengeListRes)
	ctx.Run()
}

func parseChallengeListRes(arg interface{}) (interface{}, error) {
	reply := arg.(*rt.ReplyChallengeList)
	result := make([]*ChallengeResult, 0, len(reply.Challenges))
	for _, c := range reply.Challenges {
		result = append(result, challengeResult(c))
	}
	return result, nil
}

//ListCmd 按状态和地址列出挑战
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List challenges by status and address",
		Run:   listChallenge,
	}
	addListFlags(cmd)
	return cmd
}

func addListFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("status", "s", "", "open(1), accepted(2) or finished(3)")
	cmd.MarkFlagRequired("status")

	cmd.Flags().StringP("addr", "a", "", "participant address")
	cmd.Flags().Int64P("from_id", "i", -1, "list after this challenge id")
	cmd.Flags().Int32P("count", "c", 0, "max number of challenges")
	cmd.Flags().Int32P("direction", "d", 0, "0: desc, 1: asc")
}

func listChallenge(cmd *cobra.Command, args []string) {
	status, _ := cmd.Flags().GetString("status")
	addr, _ := cmd.Flags().GetString("addr")
	fromID, _ := cmd.Flags().GetInt64("from_id")
	count, _ := cmd.Flags().GetInt32("count")
	direction, _ := cmd.Flags().GetInt32("direction")

	ctx := NewLocalCtx(cmd, func(env *Env) (interface{}, error) {
		s, err := ParseStatus(status)
		if err != nil {
			return nil, err
		}
		req := &rt.ReqChallengeList{Status: s, Addr: addr, Count: count, Direction: direction}
		if fromID >= 0 {
			from := rt.ChallengeID(fromID)
			req.From = &from
		}
		return env.Rps.QueryChallengeListByStatusAndAddr(req)
	})
	ctx.SetResultCb(parseChallengeListRes)
	ctx.Run()
}

//CountCmd 挑战数量
func CountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "count",
		Short: "Count challenges by status and address",
		Run:   countChallenge,
	}
	cmd.Flags().StringP("status", "s", "", "open(1), accepted(2) or finished(3)")
	cmd.MarkFlagRequired("status")
	cmd.Flags().StringP("addr", "a", "", "participant address")
	return cmd
}

func countChallenge(cmd *cobra.Command, args []string) {
	status, _ := cmd.Flags().GetString("status")
	addr, _ := cmd.Flags().GetString("addr")

	ctx := NewLocalCtx(cmd, func(env *Env) (interface{}, error) {
		s, err := ParseStatus(status)
		if err != nil {
			return nil, err
		}
		return env.Rps.QueryChallengeCount(&rt.ReqChallengeCount{Status: s, Addr: addr})
	})
	ctx.Run()
}
