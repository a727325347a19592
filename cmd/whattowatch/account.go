package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/amaumene/whattowatch/internal/app"
	"github.com/amaumene/whattowatch/internal/domain"
)

func (r *runner) newLoginCmd() *cobra.Command {
	var auth domain.AuthData

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and keep the session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.run(cmd, func(ctx context.Context, a *app.App) error {
				a.Users.Login(ctx, &auth)
				printUser(cmd.OutOrStdout(), a.Store().State().User)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&auth.Email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&auth.Password, "password", "p", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func (r *runner) newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the session and forget the token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.run(cmd, func(ctx context.Context, a *app.App) error {
				a.Users.Logout(ctx)
				printUser(cmd.OutOrStdout(), a.Store().State().User)
				return nil
			})
		},
	}
}

func (r *runner) newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show who the saved token belongs to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.run(cmd, func(ctx context.Context, a *app.App) error {
				a.Users.CheckAuth(ctx)
				printUser(cmd.OutOrStdout(), a.Store().State().User)
				return nil
			})
		},
	}
}

func (r *runner) newRegisterCmd() *cobra.Command {
	var (
		user       domain.NewUser
		avatarPath string
	)

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			avatar, err := readUpload(avatarPath)
			if err != nil {
				return err
			}
			user.Avatar = avatar

			return r.run(cmd, func(ctx context.Context, a *app.App) error {
				if err := a.Users.RegisterUser(ctx, &user); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "registered %s, run login to sign in\n", user.Email)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&user.Email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&user.Name, "name", "n", "", "display name")
	cmd.Flags().StringVarP(&user.Password, "password", "p", "", "account password")
	cmd.Flags().StringVar(&avatarPath, "avatar", "", "avatar image file to upload")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}
