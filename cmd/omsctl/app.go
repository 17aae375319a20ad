package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"order_dash_v1/internal/api/dto"
	"order_dash_v1/internal/model"
	"order_dash_v1/internal/session"
	"order_dash_v1/pkg/client"
	"order_dash_v1/pkg/kv"
)

const defaultServer = "http://localhost:8080"

// cmdEnv 每条命令执行前创建：会话 + API 客户端
type cmdEnv struct {
	out     io.Writer
	session *session.Store
	api     *client.Client
}

func defaultSessionPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".omsctl", "session.yaml")
	}
	return filepath.Join(home, ".omsctl", "session.yaml")
}

func newApp(out io.Writer) *cli.App {
	return &cli.App{
		Name:      "omsctl",
		Usage:     "订单管理后台命令行客户端",
		Writer:    out,
		ErrWriter: out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "server",
				Usage:   "API 地址",
				Value:   defaultServer,
				EnvVars: []string{"OMSCTL_SERVER"},
			},
			&cli.StringFlag{
				Name:    "session",
				Usage:   "会话文件路径",
				Value:   defaultSessionPath(),
				EnvVars: []string{"OMSCTL_SESSION"},
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Value: 15 * time.Second,
			},
			&cli.BoolFlag{Name: "debug"},
		},
		Commands: []*cli.Command{
			{
				Name:  "login",
				Usage: "登录店铺",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "store", Aliases: []string{"s"}, Usage: "店铺 slug 或 8 位店铺 ID", Required: true},
					&cli.StringFlag{Name: "username", Aliases: []string{"u"}, Required: true},
					&cli.StringFlag{Name: "password", Aliases: []string{"p"}, EnvVars: []string{"OMSCTL_PASSWORD"}, Required: true},
				},
				Action: withRuntime(cmdLogin),
			},
			{
				Name:   "logout",
				Usage:  "注销当前会话",
				Action: withRuntime(cmdLogout),
			},
			{
				Name:   "whoami",
				Usage:  "显示当前登录用户",
				Action: withRuntime(cmdWhoami),
			},
			{
				Name:      "resolve",
				Usage:     "解析店铺 slug",
				ArgsUsage: "<slug>",
				Action:    withRuntime(cmdResolve),
			},
			{
				Name:  "customers",
				Usage: "客户列表",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "keyword", Aliases: []string{"k"}},
					&cli.IntFlag{Name: "page", Value: 1},
					&cli.IntFlag{Name: "page-size", Value: 20},
				},
				Action: withRuntime(cmdCustomers),
			},
			{
				Name:  "orders",
				Usage: "订单列表",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "status"},
					&cli.StringFlag{Name: "from", Usage: "开始日期 2024-01-01"},
					&cli.StringFlag{Name: "to", Usage: "结束日期（含当天）"},
					&cli.IntFlag{Name: "page", Value: 1},
					&cli.IntFlag{Name: "page-size", Value: 20},
				},
				Action: withRuntime(cmdOrders),
			},
		},
	}
}

// withRuntime 加载会话后再执行命令
func withRuntime(fn func(*cli.Context, *cmdEnv) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		store := session.NewStore(kv.NewFileKV(c.String("session")))
		if _, err := store.Load(c.Context); err != nil {
			return fmt.Errorf("读取会话失败: %w", err)
		}
		rt := &cmdEnv{
			out:     c.App.Writer,
			session: store,
			api: client.New(c.String("server"),
				client.WithTokenSource(store),
				client.WithTimeout(c.Duration("timeout")),
				client.WithDebug(c.Bool("debug")),
			),
		}
		return fn(c, rt)
	}
}

// requireLogin 未登录时给出提示
func (rt *cmdEnv) requireLogin() error {
	if rt.session.State() != session.StateAuthenticated {
		return errors.New("未登录，请先执行 omsctl login")
	}
	return nil
}

// wrapAuth token 失效时提示重新登录
func wrapAuth(err error) error {
	if client.IsUnauthorized(err) {
		return fmt.Errorf("%w（会话已失效，请重新登录）", err)
	}
	return err
}

// ==================== 命令实现 ====================

func cmdLogin(c *cli.Context, rt *cmdEnv) error {
	resp, err := rt.api.Login(c.Context, dto.LoginRequest{
		Store:    c.String("store"),
		Username: c.String("username"),
		Password: c.String("password"),
	})
	if err != nil {
		return err
	}

	sess := session.Session{
		Token:        resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		StoreID:      resp.StoreID,
		StoreSlug:    resp.StoreSlug,
	}
	if resp.User != nil {
		sess.User = session.User{
			ID:       resp.User.ID,
			Username: resp.User.Username,
			FullName: resp.User.FullName,
			Role:     model.Role(resp.User.Role),
		}
	}
	if err := rt.session.SignIn(c.Context, sess); err != nil {
		return fmt.Errorf("保存会话失败: %w", err)
	}

	green := color.New(color.FgGreen)
	cyan := color.New(color.FgCyan)
	green.Fprint(rt.out, "✓ 登录成功 ")
	cyan.Fprintf(rt.out, "%s@%s", sess.User.Username, resp.StoreSlug)
	fmt.Fprintf(rt.out, " (%s, %s)\n", resp.StoreID, sess.User.Role)
	if resp.NeedsRedirect {
		color.New(color.FgYellow).Fprintf(rt.out, "店铺地址已变更，请改用: %s\n", resp.StoreSlug)
	}
	return nil
}

func cmdLogout(c *cli.Context, rt *cmdEnv) error {
	if rt.session.State() != session.StateAuthenticated {
		fmt.Fprintln(rt.out, "当前没有登录")
		return nil
	}
	sess, _ := rt.session.Current()
	// 服务端注销失败（例如 token 已过期）不影响清除本地会话
	if err := rt.api.Logout(c.Context, sess.RefreshToken); err != nil && !client.IsUnauthorized(err) {
		color.New(color.FgYellow).Fprintf(rt.out, "服务端注销失败: %v\n", err)
	}
	if err := rt.session.SignOut(c.Context); err != nil {
		return err
	}
	color.New(color.FgGreen).Fprintln(rt.out, "✓ 已注销")
	return nil
}

func cmdWhoami(c *cli.Context, rt *cmdEnv) error {
	if rt.session.State() != session.StateAuthenticated {
		fmt.Fprintln(rt.out, "未登录")
		return nil
	}
	me, err := rt.api.Me(c.Context)
	if err != nil {
		return wrapAuth(err)
	}
	if me.User != nil {
		color.New(color.FgCyan).Fprintf(rt.out, "%s", me.User.Username)
		fmt.Fprintf(rt.out, " (%s)\n", me.User.Role)
	}
	fmt.Fprintf(rt.out, "店铺: %s [%s] %s\n", me.StoreName, me.StoreSlug, me.StoreID)
	return nil
}

func cmdResolve(c *cli.Context, rt *cmdEnv) error {
	slug := c.Args().First()
	if slug == "" {
		return errors.New("用法: omsctl resolve <slug>")
	}
	res, err := rt.api.ResolveSlug(c.Context, slug)
	if err != nil {
		return err
	}
	fmt.Fprintf(rt.out, "%s -> %s (%s)\n", slug, res.CurrentSlug, res.StoreID)
	if res.NeedsRedirect {
		color.New(color.FgYellow).Fprintf(rt.out, "这是历史地址，请改用: %s\n", res.CurrentSlug)
	}
	return nil
}

func cmdCustomers(c *cli.Context, rt *cmdEnv) error {
	if err := rt.requireLogin(); err != nil {
		return err
	}
	resp, err := rt.api.Customers(c.Context, dto.CustomerListRequest{
		Keyword:  c.String("keyword"),
		Page:     c.Int("page"),
		PageSize: c.Int("page-size"),
	})
	if err != nil {
		return wrapAuth(err)
	}

	w := tabwriter.NewWriter(rt.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPHONE\tEMAIL")
	for _, cu := range resp.List {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", cu.ID, cu.Name, cu.Phone, cu.Email)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	color.New(color.Faint).Fprintf(rt.out, "共 %d 条\n", resp.Total)
	return nil
}

func cmdOrders(c *cli.Context, rt *cmdEnv) error {
	if err := rt.requireLogin(); err != nil {
		return err
	}
	resp, err := rt.api.Orders(c.Context, dto.ListOrdersRequest{
		Status:    c.String("status"),
		StartDate: c.String("from"),
		EndDate:   c.String("to"),
		Page:      c.Int("page"),
		PageSize:  c.Int("page-size"),
	})
	if err != nil {
		return wrapAuth(err)
	}

	w := tabwriter.NewWriter(rt.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ORDER NO\tDATE\tSTATUS\tTOTAL")
	for _, o := range resp.List {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			o.OrderNo, o.OrderedAt.Format("2006-01-02"), o.Status, model.FormatAmount(o.GrandTotalAmount, o.Currency))
	}
	if err := w.Flush(); err != nil {
		return err
	}
	color.New(color.Faint).Fprintf(rt.out, "共 %d 条\n", resp.Total)
	return nil
}

var _ client.TokenSource = (*session.Store)(nil)
